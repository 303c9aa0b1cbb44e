package models

// LessonType is the kind of lesson a schedule slot holds.
type LessonType string

const (
	LessonLecture  LessonType = "LECTURE"
	LessonPractice LessonType = "PRACTICE"
	LessonLab      LessonType = "LAB"
	LessonExam     LessonType = "EXAM"
)

// ScheduleItem is a single timetable slot: a group has a subject on a date
// at a given position. Group and Subject are serialized as nested objects,
// the foreign key columns stay internal.
type ScheduleItem struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	GroupID   uint       `json:"-" gorm:"not null"`
	Group     Group      `json:"group"`
	SubjectID uint       `json:"-" gorm:"not null"`
	Subject   Subject    `json:"subject"`
	Date      Date       `json:"date" gorm:"not null"`
	Position  uint8      `json:"position" gorm:"not null"`
	Type      LessonType `json:"type" gorm:"size:16;not null"`
}
