package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeTrueFalseSet QuestionType = "true_false_set"
	QuestionTypeEssay        QuestionType = "essay"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primarykey"`
	Prompt         string          `json:"prompt" gorm:"type:text;not null"`
	Topic          string          `json:"topic" gorm:"not null"`
	Difficulty     Difficulty      `json:"difficulty" gorm:"not null"`
	Type           QuestionType    `json:"type" gorm:"not null;index"`
	TeacherID      uuid.UUID       `json:"teacher_id" gorm:"type:uuid;not null;index"`
	ExpectedAnswer *string         `json:"expected_answer,omitempty" gorm:"type:text"` // essay only, advisory
	Choices        []Choice        `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Items          []TrueFalseItem `json:"items,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Choice is one alternative of a single-choice question. Exactly one per
// question carries IsCorrect = true.
type Choice struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primarykey"`
	QuestionID uuid.UUID      `json:"question_id" gorm:"type:uuid;not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool           `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TrueFalseItem is one independently answerable statement of a true/false-set
// question. IsCorrect is the ground truth for the statement.
type TrueFalseItem struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primarykey"`
	QuestionID uuid.UUID      `json:"question_id" gorm:"type:uuid;not null;index"`
	Statement  string         `json:"statement" gorm:"type:text;not null"`
	IsCorrect  bool           `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsObjective reports whether answers to this question are graded
// automatically at submission time.
func (q *Question) IsObjective() bool {
	return q.Type == QuestionTypeSingleChoice || q.Type == QuestionTypeTrueFalseSet
}
