package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ArRuslan/mpj-lb2/models"
)

// SubjectService mirrors GroupService for the subjects table.
type SubjectService struct {
	db *gorm.DB
}

func NewSubjectService(db *gorm.DB) *SubjectService {
	return &SubjectService{db: db}
}

func (s *SubjectService) List(offset, limit int) ([]models.Subject, int64, error) {
	var count int64
	if err := s.db.Model(&models.Subject{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	subjects := make([]models.Subject, 0, limit)
	if err := s.db.Order("id ASC").Offset(offset).Limit(limit).Find(&subjects).Error; err != nil {
		return nil, 0, err
	}
	return subjects, count, nil
}

func (s *SubjectService) Get(id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) Save(subject *models.Subject) error {
	return s.db.Save(subject).Error
}

func (s *SubjectService) DeleteByID(id uint) error {
	return s.db.Delete(&models.Subject{}, id).Error
}
