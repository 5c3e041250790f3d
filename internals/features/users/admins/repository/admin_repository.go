package repository

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/users/admins/model"
	helper "learnhub_backend/internals/helpers"
)

// Only root admins manage other admins.
var adminMutationLevels = []int{model.LevelRoot}

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// GetActingAdmin resolves the authenticated panel actor, with its
// authorization preloaded, from the request context.
func GetActingAdmin(db *gorm.DB, c *fiber.Ctx) (*model.AdminModel, error) {
	adminID, err := helper.GetUserID(c)
	if err != nil {
		return nil, err
	}
	var admin model.AdminModel
	if err := db.Preload("Authorization").First(&admin, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Get(id uuid.UUID) (*model.AdminModel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: admin id", helper.ErrInvalidArgument)
	}
	var admin model.AdminModel
	if err := r.DB.Preload("Authorization").First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetAll(offset, limit int, search string) ([]model.AdminModel, int64, error) {
	admins := make([]model.AdminModel, 0)
	q := r.DB.Model(&model.AdminModel{}).Preload("Authorization")
	if search != "" {
		q = q.Where("admin_name LIKE ? OR admin_email LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("admin_name ASC").Offset(offset).Limit(limit).Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (r *AdminRepository) GetAuthorizationByLevel(level int) (*model.AuthorizationModel, error) {
	var auth model.AuthorizationModel
	if err := r.DB.First(&auth, "authorization_level = ?", level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auth, nil
}

func (r *AdminRepository) Add(actor *model.AdminModel, admin *model.AdminModel) (bool, error) {
	if !actor.HasLevel(adminMutationLevels...) {
		return false, fmt.Errorf("%w: admin add", helper.ErrIllegalAccess)
	}
	if admin == nil || admin.AdminEmail == "" || admin.AdminName == "" {
		return false, fmt.Errorf("%w: admin name/email", helper.ErrInvalidArgument)
	}
	if admin.AdminAuthorizationID == uuid.Nil {
		return false, fmt.Errorf("%w: authorization id", helper.ErrInvalidArgument)
	}
	res := r.DB.Omit("Authorization").Create(admin)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AdminRepository) Update(actor *model.AdminModel, admin *model.AdminModel) (bool, error) {
	if !actor.HasLevel(adminMutationLevels...) {
		return false, fmt.Errorf("%w: admin update", helper.ErrIllegalAccess)
	}
	if admin == nil || admin.AdminID == uuid.Nil {
		return false, fmt.Errorf("%w: admin id", helper.ErrInvalidArgument)
	}
	updates := map[string]interface{}{
		"admin_name":      admin.AdminName,
		"admin_genre":     admin.AdminGenre,
		"admin_birthdate": admin.AdminBirthdate,
		"admin_email":     admin.AdminEmail,
	}
	if admin.AdminAuthorizationID != uuid.Nil {
		updates["admin_authorization_id"] = admin.AdminAuthorizationID
	}
	if admin.AdminPassword != "" {
		updates["admin_password"] = admin.AdminPassword
	}
	res := r.DB.Model(&model.AdminModel{}).
		Where("admin_id = ?", admin.AdminID).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AdminRepository) Delete(actor *model.AdminModel, id uuid.UUID) (bool, error) {
	if !actor.HasLevel(adminMutationLevels...) {
		return false, fmt.Errorf("%w: admin delete", helper.ErrIllegalAccess)
	}
	if id == uuid.Nil {
		return false, fmt.Errorf("%w: admin id", helper.ErrInvalidArgument)
	}
	if actor != nil && actor.AdminID == id {
		return false, fmt.Errorf("%w: admins cannot delete themselves", helper.ErrInvalidArgument)
	}
	res := r.DB.Delete(&model.AdminModel{}, "admin_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
