package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ArRuslan/mpj-lb2/models"
)

// GroupService is a thin accessor over the groups table. All pagination
// policy and validation live in the handlers; the service only guarantees
// id-ascending ordering and total counts.
type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// List returns one page of groups ordered by id ascending, together with
// the total number of groups across all pages.
func (s *GroupService) List(offset, limit int) ([]models.Group, int64, error) {
	var count int64
	if err := s.db.Model(&models.Group{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	groups := make([]models.Group, 0, limit)
	if err := s.db.Order("id ASC").Offset(offset).Limit(limit).Find(&groups).Error; err != nil {
		return nil, 0, err
	}
	return groups, count, nil
}

// Get returns the group with the given id, or nil when no such group
// exists. Absence is not an error at this layer.
func (s *GroupService) Get(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// Save upserts the group. A zero ID means insert; the store assigns the
// id and Save fills it in on the passed struct.
func (s *GroupService) Save(group *models.Group) error {
	return s.db.Save(group).Error
}

// DeleteByID removes the group if it exists. Deleting a missing id is a
// no-op, not an error.
func (s *GroupService) DeleteByID(id uint) error {
	return s.db.Delete(&models.Group{}, id).Error
}
