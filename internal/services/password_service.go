package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultAdminPassword applies while no password row exists.
const defaultAdminPassword = "admin123"

const minPasswordLength = 4

var (
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
)

// VerifyAdminPassword checks the shared admin secret. Stored passwords are
// bcrypt hashes; the default only matches as a literal when nothing has
// been configured yet.
func VerifyAdminPassword(password string) (bool, error) {
	var record models.AdminPassword
	err := database.DB.Order("created_at desc").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return password == defaultAdminPassword, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(record.Hash), []byte(password)) == nil, nil
}

// ChangeAdminPassword replaces the secret after checking the current one.
func ChangeAdminPassword(currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	valid, err := VerifyAdminPassword(currentPassword)
	if err != nil {
		return err
	}
	if !valid {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var record models.AdminPassword
	err = database.DB.Order("created_at desc").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.DB.Create(&models.AdminPassword{Hash: string(hash)}).Error
	}
	if err != nil {
		return err
	}
	return database.DB.Model(&record).Update("hash", string(hash)).Error
}

// AdminPasswordConfigured reports whether a custom password replaced the
// default.
func AdminPasswordConfigured() (bool, error) {
	var count int64
	if err := database.DB.Model(&models.AdminPassword{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
