package main

import (
	"errors"

	"github.com/blevesearch/bleve/v2"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/index"
	"go.uber.org/zap"
)

// openIndex opens the content index at path, creating it if there is none yet
func openIndex(appFs afero.Fs, path string) (*index.BleveIndexer, error) {
	exists, err := afero.DirExists(appFs, path)
	if err != nil {
		return nil, err
	}

	if exists {
		indexFile, err := bleve.Open(path)
		if err == nil {
			return index.NewBleve(indexFile), nil
		}
		if !errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
			return nil, err
		}
	}

	zap.L().Info("no index found, creating a new one", zap.String("path", path))
	indexFile, err := bleve.New(path, index.Mapping())
	if err != nil {
		return nil, err
	}
	return index.NewBleve(indexFile), nil
}
