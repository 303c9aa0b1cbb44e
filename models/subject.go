package models

// Subject represents a teachable course.
type Subject struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	ShortName string `json:"short_name" gorm:"not null"`
}
