//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Installs the application.
func Install() error {
	return sh.Run("go", "install", "-ldflags", ldflags())
}

// Creates an executable for the given platform. Possible platforms are "rpi64", "rpi32" and "osxarm".
func Build(platform string) error {
	envMap, err := env(platform)
	if err != nil {
		return err
	}
	return sh.RunWith(envMap, "go", "build", "-o", "corkboard-"+platform, "-ldflags", ldflags())
}

// Runs the test suite with the race detector on.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func ldflags() string {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		version = "unknown"
	}
	return "-X main.version=" + version
}

func env(platform string) (map[string]string, error) {
	switch platform {
	case "rpi64":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "arm64",
		}, nil
	case "rpi32":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "arm",
			"GOARM":  "7",
		}, nil
	case "osxarm":
		return map[string]string{
			"GOOS":   "darwin",
			"GOARCH": "arm64",
		}, nil
	}

	return nil, fmt.Errorf("platform '%s' not supported", platform)
}
