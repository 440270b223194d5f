package model

import (
	"errors"
	"time"

	"github.com/svera/corkboard/internal/result"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BoardRepository struct {
	DB *gorm.DB
}

func (b *BoardRepository) Create(board *Board) error {
	if result := b.DB.Create(board); result.Error != nil {
		zap.L().Error("error creating board", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

// Find returns the board with the passed ID, or nil if there is none
func (b *BoardRepository) Find(id uint) (*Board, error) {
	var board Board

	result := b.DB.First(&board, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &board, result.Error
}

// Owned returns a page of the boards created by the passed user, newest first
func (b *BoardRepository) Owned(ownerID uint, page, resultsPerPage int) (result.Paginated[[]Board], error) {
	var (
		boards []Board
		total  int64
	)

	res := b.DB.Scopes(Paginate(page, resultsPerPage)).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&boards)
	if res.Error != nil {
		zap.L().Error("error listing owned boards", zap.Uint("owner", ownerID), zap.Error(res.Error))
		return result.Paginated[[]Board]{}, res.Error
	}
	if err := b.DB.Model(&Board{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return result.Paginated[[]Board]{}, err
	}

	return result.NewPaginated(resultsPerPage, page, int(total), boards), nil
}

// Invited returns the boards the passed email has been invited to
func (b *BoardRepository) Invited(email string) ([]Board, error) {
	var boards []Board

	res := b.DB.Where("id IN (?)", b.DB.Model(&Invite{}).Select("board_id").Where("email = ?", email)).
		Order("created_at DESC").
		Find(&boards)
	if res.Error != nil {
		zap.L().Error("error listing invited boards", zap.Error(res.Error))
		return nil, res.Error
	}
	return boards, nil
}

func (b *BoardRepository) UpdateTitle(id uint, title string) error {
	return b.DB.Model(&Board{}).Where("id = ?", id).Update("title", title).Error
}

func (b *BoardRepository) Expire(id uint, at time.Time) error {
	if result := b.DB.Model(&Board{}).Where("id = ?", id).Update("expires_at", at); result.Error != nil {
		zap.L().Error("error expiring board", zap.Uint("board", id), zap.Error(result.Error))
		return result.Error
	}
	return nil
}

// AcquireLock hands the edit lease of the board over to holder until the passed
// instant, as long as nobody else acquired it since version was read.
func (b *BoardRepository) AcquireLock(id, version uint, holder string, until time.Time) (bool, error) {
	res := b.DB.Model(&Board{}).
		Where("id = ? AND lock_version = ?", id, version).
		Updates(map[string]any{
			"locked_until": until,
			"locked_by":    holder,
			"lock_version": gorm.Expr("lock_version + 1"),
		})
	if res.Error != nil {
		zap.L().Error("error acquiring board lock", zap.Uint("board", id), zap.String("holder", holder), zap.Error(res.Error))
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete removes the board along with its invites and content
func (b *BoardRepository) Delete(id uint) error {
	err := b.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&Content{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&Invite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Board{}, id).Error
	})
	if err != nil {
		zap.L().Error("error deleting board", zap.Uint("board", id), zap.Error(err))
	}
	return err
}
