package mysql

import (
	"Connect_Life/internal/model"

	"gorm.io/gorm"
)

type VenueRepository struct {
	DB *gorm.DB
}

func (r *VenueRepository) Create(venue *model.Venue) error {
	return r.DB.Create(venue).Error
}

func (r *VenueRepository) FindByID(id uint64) (*model.Venue, error) {
	var venue model.Venue
	err := r.DB.First(&venue, id).Error
	return &venue, err
}

func (r *VenueRepository) NameTaken(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Venue{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *VenueRepository) List() ([]model.Venue, error) {
	var list []model.Venue
	err := r.DB.Order("name").Find(&list).Error
	return list, err
}

func (r *VenueRepository) DeleteByID(id uint64) (bool, error) {
	tx := r.DB.Delete(&model.Venue{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
