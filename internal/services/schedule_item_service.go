package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArRuslan/mpj-lb2/models"
)

// ScheduleItemService is the accessor for timetable slots. Every read
// preloads the owning group and subject so the API can serialize them as
// nested objects.
type ScheduleItemService struct {
	db *gorm.DB
}

func NewScheduleItemService(db *gorm.DB) *ScheduleItemService {
	return &ScheduleItemService{db: db}
}

func (s *ScheduleItemService) List(offset, limit int) ([]models.ScheduleItem, int64, error) {
	var count int64
	if err := s.db.Model(&models.ScheduleItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.ScheduleItem, 0, limit)
	err := s.db.Preload("Group").Preload("Subject").
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// ListByGroup pages over the schedule items whose group foreign key
// matches the given group, same ordering contract as List.
func (s *ScheduleItemService) ListByGroup(group *models.Group, offset, limit int) ([]models.ScheduleItem, int64, error) {
	var count int64
	if err := s.db.Model(&models.ScheduleItem{}).Where("group_id = ?", group.ID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.ScheduleItem, 0, limit)
	err := s.db.Preload("Group").Preload("Subject").
		Where("group_id = ?", group.ID).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// ListAllByGroup returns every schedule item of the group in timetable
// order (date, then slot position). Used by the export endpoint.
func (s *ScheduleItemService) ListAllByGroup(group *models.Group) ([]models.ScheduleItem, error) {
	items := make([]models.ScheduleItem, 0)
	err := s.db.Preload("Group").Preload("Subject").
		Where("group_id = ?", group.ID).
		Order("date ASC, position ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ScheduleItemService) Get(id uint) (*models.ScheduleItem, error) {
	var item models.ScheduleItem
	err := s.db.Preload("Group").Preload("Subject").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Save upserts the item itself without touching the referenced group and
// subject rows; the associations on the struct are presentation state.
func (s *ScheduleItemService) Save(item *models.ScheduleItem) error {
	return s.db.Omit(clause.Associations).Save(item).Error
}

func (s *ScheduleItemService) DeleteByID(id uint) error {
	return s.db.Delete(&models.ScheduleItem{}, id).Error
}
