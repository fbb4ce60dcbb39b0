package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChoiceResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

type TrueFalseItemResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Statement string    `json:"statement"`
	IsCorrect bool      `json:"is_correct"`
}

type QuestionResponseDTO struct {
	ID             uuid.UUID                  `json:"id"`
	Prompt         string                     `json:"prompt"`
	Topic          string                     `json:"topic"`
	Difficulty     string                     `json:"difficulty"`
	Type           string                     `json:"type"`
	TeacherID      uuid.UUID                  `json:"teacher_id"`
	ExpectedAnswer *string                    `json:"expected_answer,omitempty"`
	Choices        []ChoiceResponseDTO        `json:"choices,omitempty"`
	Items          []TrueFalseItemResponseDTO `json:"items,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// AnswerResponseDTO is returned from submission and listing. For objective
// questions Score and Corrected are already resolved when it comes back.
type AnswerResponseDTO struct {
	ID          uuid.UUID  `json:"id"`
	ExamID      uuid.UUID  `json:"exam_id"`
	StudentID   uuid.UUID  `json:"student_id"`
	QuestionID  uuid.UUID  `json:"question_id"`
	ChoiceID    *uuid.UUID `json:"choice_id,omitempty"`
	ItemID      *uuid.UUID `json:"item_id,omitempty"`
	ItemAnswer  *bool      `json:"item_answer,omitempty"`
	AnswerText  *string    `json:"answer_text,omitempty"`
	Score       *float64   `json:"score,omitempty"`
	Corrected   bool       `json:"corrected"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

// EssayCorrectionDTO is one entry of a teacher's grading queue.
type EssayCorrectionDTO struct {
	AnswerID            uuid.UUID `json:"answer_id"`
	ExamID              uuid.UUID `json:"exam_id"`
	ExamDescription     string    `json:"exam_description"`
	ExamScheduledAt     time.Time `json:"exam_scheduled_at"`
	StudentID           uuid.UUID `json:"student_id"`
	StudentRegistration string    `json:"student_registration"`
	StudentEmail        string    `json:"student_email"`
	QuestionID          uuid.UUID `json:"question_id"`
	QuestionTopic       string    `json:"question_topic"`
	QuestionPrompt      string    `json:"question_prompt"`
	AnswerText          *string   `json:"answer_text,omitempty"`
	Score               *float64  `json:"score,omitempty"`
	Corrected           bool      `json:"corrected"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

// FinalGradeDTO carries the computed grade plus the corrected/pending counts
// so a caller can tell "nothing graded yet" apart from "graded all zero".
type FinalGradeDTO struct {
	ExamID         uuid.UUID `json:"exam_id"`
	StudentID      uuid.UUID `json:"student_id"`
	Grade          float64   `json:"grade"`
	CorrectedCount int       `json:"corrected_count"`
	PendingCount   int       `json:"pending_count"`
}

type ExamParticipantDTO struct {
	StudentID    uuid.UUID `json:"student_id"`
	Registration string    `json:"registration"`
	Email        string    `json:"email"`
}

type ExamResponseDTO struct {
	ID           uuid.UUID            `json:"id"`
	Description  string               `json:"description"`
	ScheduledAt  time.Time            `json:"scheduled_at"`
	Participants []ExamParticipantDTO `json:"participants,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

type StudentResponseDTO struct {
	ID           uuid.UUID `json:"id"`
	Registration string    `json:"registration"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

type TeacherResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
