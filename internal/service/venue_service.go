package service

import (
	"fmt"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/policy"
	"Connect_Life/internal/repository/mysql"

	"gorm.io/gorm"
)

type VenueService struct {
	repo *mysql.VenueRepository
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{repo: &mysql.VenueRepository{DB: db}}
}

// Create 场地仅管理员可建；名字全局唯一
func (s *VenueService) Create(caller policy.Identity, name, address, image string) (*model.Venue, error) {
	if !policy.CanManageVenues(caller) {
		return nil, fmt.Errorf("only admins can manage venues: %w", pkg.ErrForbidden)
	}
	if name == "" || address == "" {
		return nil, fmt.Errorf("name and address are required: %w", pkg.ErrValidation)
	}

	taken, err := s.repo.NameTaken(name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("a venue with this name already exists: %w", pkg.ErrConflict)
	}

	venue := &model.Venue{
		Name:      name,
		Address:   address,
		Image:     image,
		CreatedBy: caller.ID,
	}
	if err := s.repo.Create(venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *VenueService) List() ([]model.Venue, error) {
	return s.repo.List()
}

func (s *VenueService) Delete(caller policy.Identity, id uint64) error {
	if !policy.CanManageVenues(caller) {
		return fmt.Errorf("only admins can manage venues: %w", pkg.ErrForbidden)
	}
	deleted, err := s.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("venue not found: %w", pkg.ErrNotFound)
	}
	return nil
}
