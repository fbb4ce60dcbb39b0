package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChoiceCreateDTO is one alternative of a single-choice question.
type ChoiceCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// TrueFalseItemCreateDTO is one statement of a true/false-set question.
type TrueFalseItemCreateDTO struct {
	Statement string `json:"statement" binding:"required"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

// QuestionCreateDTO is for a teacher authoring a new question. Choices are
// required for single_choice, Items for true_false_set; essay takes neither.
type QuestionCreateDTO struct {
	TeacherID      uuid.UUID                `json:"teacher_id" binding:"required"`
	Prompt         string                   `json:"prompt" binding:"required"`
	Topic          string                   `json:"topic" binding:"required"`
	Difficulty     string                   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Type           string                   `json:"type" binding:"required,oneof=single_choice true_false_set essay"`
	ExpectedAnswer *string                  `json:"expected_answer"`
	Choices        []ChoiceCreateDTO        `json:"choices" binding:"omitempty,dive"`
	Items          []TrueFalseItemCreateDTO `json:"items" binding:"omitempty,dive"`
}

// QuestionUpdateDTO replaces the question text fields and, when Choices or
// Items are present, the whole option set.
type QuestionUpdateDTO struct {
	Prompt         string                   `json:"prompt" binding:"required"`
	Topic          string                   `json:"topic" binding:"required"`
	Difficulty     string                   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Type           string                   `json:"type" binding:"required,oneof=single_choice true_false_set essay"`
	ExpectedAnswer *string                  `json:"expected_answer"`
	Choices        []ChoiceCreateDTO        `json:"choices" binding:"omitempty,dive"`
	Items          []TrueFalseItemCreateDTO `json:"items" binding:"omitempty,dive"`
}

// AnswerSubmitDTO carries the payload of a single answer. Exactly one shape
// must be filled in, matching the question type: ChoiceID for single choice,
// ItemID plus ItemAnswer for a true/false item, AnswerText for essay.
type AnswerSubmitDTO struct {
	QuestionID uuid.UUID  `json:"question_id" binding:"required"`
	ChoiceID   *uuid.UUID `json:"choice_id"`
	ItemID     *uuid.UUID `json:"item_id"`
	ItemAnswer *bool      `json:"item_answer"`
	AnswerText *string    `json:"answer_text"`
}

// EssayGradeDTO is a teacher-assigned score for an essay answer.
type EssayGradeDTO struct {
	Score *float64 `json:"score" binding:"required"`
}

// ExamCreateDTO creates an exam together with its student participations.
type ExamCreateDTO struct {
	Description string      `json:"description" binding:"required"`
	ScheduledAt time.Time   `json:"scheduled_at" binding:"required"`
	StudentIDs  []uuid.UUID `json:"student_ids"`
}

type StudentCreateDTO struct {
	Registration string `json:"registration" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
}

type TeacherCreateDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
