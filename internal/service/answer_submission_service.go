package service

import (
	"errors"
	"strings"
	"time"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerSubmissionService accepts one answer for one (exam, student, question)
// triple and, for objective question types, grades it synchronously before
// returning.
type AnswerSubmissionService interface {
	Submit(examID, studentID uuid.UUID, req dto.AnswerSubmitDTO) (*dto.AnswerResponseDTO, error)
	ListForStudent(examID, studentID uuid.UUID) ([]dto.AnswerResponseDTO, error)
}

type answerSubmissionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	autoGrader   AutoGraderService
}

func NewAnswerSubmissionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	autoGrader AutoGraderService,
) AnswerSubmissionService {
	return &answerSubmissionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		autoGrader:   autoGrader,
	}
}

func (s *answerSubmissionService) Submit(examID, studentID uuid.UUID, req dto.AnswerSubmitDTO) (*dto.AnswerResponseDTO, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question %s not found", req.QuestionID)
		}
		return nil, apperror.Internal("failed to load question", err)
	}

	exists, err := s.answerRepo.Exists(examID, studentID, req.QuestionID)
	if err != nil {
		return nil, apperror.Internal("failed to check for existing answer", err)
	}
	if exists {
		return nil, apperror.Conflict("question %s was already answered in this exam", req.QuestionID)
	}

	answer := model.Answer{
		ID:          uuid.New(),
		ExamID:      examID,
		StudentID:   studentID,
		QuestionID:  question.ID,
		SubmittedAt: time.Now(),
		Corrected:   false,
	}
	if err := applyPayload(&answer, question, req); err != nil {
		return nil, err
	}

	// The score is computed before the insert, so a submission is a single
	// write: a grading failure persists nothing and the question stays
	// answerable.
	if question.IsObjective() {
		if err := s.autoGrader.Grade(&answer, question); err != nil {
			return nil, err
		}
	}

	if err := s.answerRepo.Create(&answer); err != nil {
		// The unique index closes the gap between the Exists check and the
		// insert: a racing duplicate lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("question %s was already answered in this exam", req.QuestionID)
		}
		log.Error().Err(err).Str("question_id", question.ID.String()).Msg("Submit: failed to persist answer")
		return nil, apperror.Internal("failed to persist answer", err)
	}

	log.Info().
		Str("exam_id", examID.String()).
		Str("student_id", studentID.String()).
		Str("question_id", question.ID.String()).
		Str("type", string(question.Type)).
		Bool("corrected", answer.Corrected).
		Msg("Answer submitted")

	return answerToDTO(&answer), nil
}

func (s *answerSubmissionService) ListForStudent(examID, studentID uuid.UUID) ([]dto.AnswerResponseDTO, error) {
	answers, err := s.answerRepo.FindByExamAndStudent(examID, studentID)
	if err != nil {
		return nil, apperror.Internal("failed to list answers", err)
	}

	dtos := make([]dto.AnswerResponseDTO, len(answers))
	for i := range answers {
		dtos[i] = *answerToDTO(&answers[i])
	}
	return dtos, nil
}

// applyPayload copies exactly the fields the question type requires onto the
// answer. Anything missing, blank or extraneous is a validation failure.
func applyPayload(answer *model.Answer, question *model.Question, req dto.AnswerSubmitDTO) error {
	switch question.Type {
	case model.QuestionTypeSingleChoice:
		if req.ChoiceID == nil {
			return apperror.Validation("a choice must be informed for a single-choice question")
		}
		if req.ItemID != nil || req.ItemAnswer != nil || req.AnswerText != nil {
			return apperror.Validation("single-choice answers take a choice id and nothing else")
		}
		answer.ChoiceID = req.ChoiceID

	case model.QuestionTypeTrueFalseSet:
		if req.ItemID == nil || req.ItemAnswer == nil {
			return apperror.Validation("item and true/false answer must be informed for a true/false question")
		}
		if req.ChoiceID != nil || req.AnswerText != nil {
			return apperror.Validation("true/false answers take an item id and a boolean and nothing else")
		}
		answer.ItemID = req.ItemID
		answer.ItemAnswer = req.ItemAnswer

	case model.QuestionTypeEssay:
		if req.AnswerText == nil || len(strings.TrimSpace(*req.AnswerText)) == 0 {
			return apperror.Validation("a non-empty text must be informed for an essay question")
		}
		if req.ChoiceID != nil || req.ItemID != nil || req.ItemAnswer != nil {
			return apperror.Validation("essay answers take free text and nothing else")
		}
		answer.AnswerText = req.AnswerText

	default:
		return apperror.InternalConsistency("question %s has unknown type %q", question.ID, question.Type)
	}
	return nil
}

func answerToDTO(answer *model.Answer) *dto.AnswerResponseDTO {
	var resp dto.AnswerResponseDTO
	if err := copier.Copy(&resp, answer); err != nil {
		log.Error().Err(err).Msg("Failed to copy answer to DTO")
	}
	return &resp
}
