package model

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InviteRepository struct {
	DB *gorm.DB
}

// Create stores the invite. Inviting the same email twice to a board returns
// errs.ErrAlreadyExists.
func (i *InviteRepository) Create(invite *Invite) error {
	invite.Email = strings.ToLower(invite.Email)
	if result := i.DB.Create(invite); result.Error != nil {
		zap.L().Error("error creating invite", zap.Uint("board", invite.BoardID), zap.Error(result.Error))
		return uniqueViolation(result.Error)
	}
	return nil
}

// FindByToken returns the invite with the passed token, as long as it belongs to the passed board
func (i *InviteRepository) FindByToken(boardID uint, token string) (*Invite, error) {
	var invite Invite

	result := i.DB.Where("id = ? AND board_id = ?", token, boardID).First(&invite)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invite, result.Error
}

func (i *InviteRepository) FindByBoardAndEmail(boardID uint, email string) (*Invite, error) {
	var invite Invite

	result := i.DB.Where("board_id = ? AND email = ?", boardID, strings.ToLower(email)).First(&invite)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invite, result.Error
}

// List returns the invites of a board, oldest first
func (i *InviteRepository) List(boardID uint) ([]Invite, error) {
	invites := []Invite{}

	if result := i.DB.Where("board_id = ?", boardID).Order("created_at ASC").Find(&invites); result.Error != nil {
		zap.L().Error("error listing invites", zap.Uint("board", boardID), zap.Error(result.Error))
		return nil, result.Error
	}
	return invites, nil
}

// UpdateType changes the access type of an invite, reporting whether there was one to change
func (i *InviteRepository) UpdateType(boardID uint, email, accessType string) (bool, error) {
	result := i.DB.Model(&Invite{}).Where("board_id = ? AND email = ?", boardID, strings.ToLower(email)).Update("type", accessType)
	if result.Error != nil {
		zap.L().Error("error updating invite", zap.Uint("board", boardID), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes an invite, reporting whether there was one to remove
func (i *InviteRepository) Delete(boardID uint, email string) (bool, error) {
	result := i.DB.Where("board_id = ? AND email = ?", boardID, strings.ToLower(email)).Delete(&Invite{})
	if result.Error != nil {
		zap.L().Error("error deleting invite", zap.Uint("board", boardID), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
