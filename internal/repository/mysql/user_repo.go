package mysql

import (
	"Connect_Life/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// EmailTaken 应用层唯一性检查，excludeID 用于改邮箱时排除自己
func (r *UserRepository) EmailTaken(email string, excludeID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var list []model.User
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *UserRepository) Save(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdatePassword(user *model.User, newHash string) error {
	return r.DB.Model(user).Update("password", newHash).Error
}

func (r *UserRepository) DeleteByID(id uint64) (bool, error) {
	tx := r.DB.Delete(&model.User{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
