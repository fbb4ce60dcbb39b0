package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is a single student answer for one question of one exam. Exactly one
// of ChoiceID, (ItemID, ItemAnswer) or AnswerText is populated, matching the
// question type. The composite unique index makes a duplicate submission for
// the same (exam, student, question) fail at insert time.
type Answer struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primarykey"`
	ExamID      uuid.UUID      `json:"exam_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_exam_student_question"`
	StudentID   uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_exam_student_question"`
	QuestionID  uuid.UUID      `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_exam_student_question;index"`
	Question    Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChoiceID    *uuid.UUID     `json:"choice_id,omitempty" gorm:"type:uuid"`
	ItemID      *uuid.UUID     `json:"item_id,omitempty" gorm:"type:uuid"`
	ItemAnswer  *bool          `json:"item_answer,omitempty"`
	AnswerText  *string        `json:"answer_text,omitempty" gorm:"type:text"`
	Score       *float64       `json:"score,omitempty"` // in [0,1], present iff Corrected
	Corrected   bool           `json:"corrected" gorm:"not null;default:false"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
