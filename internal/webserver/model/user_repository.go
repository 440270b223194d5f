package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/svera/corkboard/internal/errs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) Create(user *User) error {
	if result := u.DB.Create(user); result.Error != nil {
		zap.L().Error("error creating user", zap.Error(result.Error))
		return uniqueViolation(result.Error)
	}
	return nil
}

func (u *UserRepository) Update(user *User) error {
	if result := u.DB.Save(user); result.Error != nil {
		zap.L().Error("error updating user", zap.Error(result.Error))
		return uniqueViolation(result.Error)
	}
	return nil
}

// UpdateProfile saves the user and moves the invites addressed to its previous
// email to the new one, so boards shared with the user stay reachable.
func (u *UserRepository) UpdateProfile(user *User, previousEmail string) error {
	err := u.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if strings.EqualFold(previousEmail, user.Email) {
			return nil
		}
		return tx.Model(&Invite{}).Where("email = ?", previousEmail).Update("email", user.Email).Error
	})
	if err != nil {
		zap.L().Error("error updating user profile", zap.Uint("user", user.ID), zap.Error(err))
		return uniqueViolation(err)
	}
	return nil
}

func (u *UserRepository) FindByID(id uint) (*User, error) {
	return u.find("id", id)
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.find("email", strings.ToLower(email))
}

func (u *UserRepository) FindByUsername(username string) (*User, error) {
	return u.find("username", strings.ToLower(username))
}

func (u *UserRepository) find(field string, value any) (*User, error) {
	var user User

	result := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, result.Error
}

// uniqueViolation translates SQLite unique constraint failures into errs.ErrAlreadyExists
func uniqueViolation(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %s", errs.ErrAlreadyExists, err.Error())
	}
	return err
}
