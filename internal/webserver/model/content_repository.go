package model

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository struct {
	DB *gorm.DB
}

// Create stores the item and stamps it as the latest change of its board.
// content.Modified is taken as the lowest stamp acceptable, and is replaced
// with the stamp actually stored.
func (r *ContentRepository) Create(content *Content) error {
	floor := content.Modified
	content.Modified = 0

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(content).Error; err != nil {
			return err
		}
		if err := tx.Model(&Content{}).Where("id = ?", content.ID).UpdateColumn("modified", stamp(content.BoardID, floor)).Error; err != nil {
			return err
		}
		return readStamp(tx, content)
	})
	if err != nil {
		zap.L().Error("error creating content", zap.Uint("board", content.BoardID), zap.Error(err))
	}
	return err
}

// Find returns the content item with the passed ID inside the passed board, or nil if there is none
func (r *ContentRepository) Find(boardID, id uint) (*Content, error) {
	var content Content

	result := r.DB.Where("id = ? AND board_id = ?", id, boardID).First(&content)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &content, result.Error
}

// ModifiedSince returns every item of the board whose Modified stamp is greater
// than since, deleted ones included, so pollers learn about removals too.
func (r *ContentRepository) ModifiedSince(boardID uint, since int64) ([]Content, error) {
	contents := []Content{}

	result := r.DB.Where("board_id = ? AND modified > ?", boardID, since).Order("id ASC").Find(&contents)
	if result.Error != nil {
		zap.L().Error("error listing content", zap.Uint("board", boardID), zap.Error(result.Error))
		return nil, result.Error
	}
	return contents, nil
}

// Live returns the items of the board which have not been deleted, oldest first
func (r *ContentRepository) Live(boardID uint) ([]Content, error) {
	contents := []Content{}

	result := r.DB.Where("board_id = ? AND deleted = ?", boardID, false).Order("id ASC").Find(&contents)
	if result.Error != nil {
		zap.L().Error("error listing live content", zap.Uint("board", boardID), zap.Error(result.Error))
		return nil, result.Error
	}
	return contents, nil
}

// Update persists the editable fields of a non deleted, non chat item, stamping it
// as the latest change of its board. content.Modified works as in Create.
func (r *ContentRepository) Update(content *Content) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Content{}).
			Where("id = ? AND board_id = ? AND deleted = ? AND type <> ?", content.ID, content.BoardID, false, TypeChat).
			Updates(map[string]any{
				"body":             content.Body,
				"position":         content.Position,
				"last_modified_by": content.LastModifiedBy,
				"modified":         stamp(content.BoardID, content.Modified),
				"updated_at":       content.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
		return readStamp(tx, content)
	})
	if err != nil {
		zap.L().Error("error updating content", zap.Uint("content", content.ID), zap.Error(err))
	}
	return err
}

// SoftDelete flags a non chat item as deleted. content.Modified works as in Create.
func (r *ContentRepository) SoftDelete(content *Content) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Content{}).
			Where("id = ? AND board_id = ? AND type <> ?", content.ID, content.BoardID, TypeChat).
			Updates(map[string]any{
				"deleted":          true,
				"last_modified_by": content.LastModifiedBy,
				"modified":         stamp(content.BoardID, content.Modified),
				"updated_at":       content.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
		return readStamp(tx, content)
	})
	if err != nil {
		zap.L().Error("error deleting content", zap.Uint("content", content.ID), zap.Error(err))
	}
	return err
}

// ByIDs returns the live items of the board among the passed IDs, in the same order as the IDs
func (r *ContentRepository) ByIDs(boardID uint, ids []uint) ([]Content, error) {
	contents := []Content{}
	if len(ids) == 0 {
		return contents, nil
	}

	result := r.DB.Where("board_id = ? AND deleted = ? AND id IN ?", boardID, false, ids).Find(&contents)
	if result.Error != nil {
		zap.L().Error("error loading content", zap.Uint("board", boardID), zap.Error(result.Error))
		return nil, result.Error
	}

	position := make(map[uint]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	slices.SortFunc(contents, func(a, b Content) int {
		return position[a.ID] - position[b.ID]
	})
	return contents, nil
}

// stamp computes the Modified value of a change of the board inside the statement
// writing it: floor, or one past the latest stamp of the board if that is greater.
// SQLite serialises writers, so stamps grow in the same order changes are committed.
func stamp(boardID uint, floor int64) clause.Expr {
	return gorm.Expr("MAX(?, (SELECT COALESCE(MAX(modified), 0) + 1 FROM contents WHERE board_id = ?))", floor, boardID)
}

func readStamp(tx *gorm.DB, content *Content) error {
	return tx.Model(&Content{}).Where("id = ?", content.ID).Select("modified").Scan(&content.Modified).Error
}
