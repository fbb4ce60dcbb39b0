package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Exam struct {
	ID           uuid.UUID           `json:"id" gorm:"type:uuid;primarykey"`
	Description  string              `json:"description" gorm:"not null"`
	ScheduledAt  time.Time           `json:"scheduled_at" gorm:"not null"`
	Participants []ExamParticipation `json:"participants,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    gorm.DeletedAt      `gorm:"index" json:"-"`
}

// ExamParticipation enrolls one student in one exam. A student appears at most
// once per exam.
type ExamParticipation struct {
	ExamID    uuid.UUID `json:"exam_id" gorm:"type:uuid;primarykey"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primarykey"`
	Student   Student   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt time.Time `json:"created_at"`
}
