package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "learnhub_backend/internals/features/users/auth/model"
	adminModel "learnhub_backend/internals/features/users/admins/model"
	studentModel "learnhub_backend/internals/features/users/students/model"
)

func FindStudentByEmail(db *gorm.DB, email string) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := db.Where("student_email = ?", email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func FindStudentByID(db *gorm.DB, id uuid.UUID) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := db.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func FindAdminByEmail(db *gorm.DB, email string) (*adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	if err := db.Preload("Authorization").Where("admin_email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func FindAdminByID(db *gorm.DB, id uuid.UUID) (*adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	if err := db.Preload("Authorization").First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

func StoreRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

func RefreshTokenExists(db *gorm.DB, hash string) (bool, error) {
	var count int64
	if err := db.Model(&authModel.RefreshToken{}).Where("token = ?", hash).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RotateRefreshToken replaces a consumed refresh-token row atomically.
func RotateRefreshToken(db *gorm.DB, oldHash string, next *authModel.RefreshToken) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", oldHash).Delete(&authModel.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(next).Error
	})
}

func DeleteRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshToken{}).Error
}
