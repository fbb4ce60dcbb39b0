package service

import (
	"errors"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Correction queue filters accepted by ListForTeacher.
const (
	CorrectionFilterPending = "pending"
	CorrectionFilterGraded  = "graded"
	CorrectionFilterAll     = "all"
)

// GradingQueueService lists the essay answers a teacher has to correct and
// records the score the teacher assigns.
type GradingQueueService interface {
	ListForTeacher(teacherID uuid.UUID, filter string) ([]dto.EssayCorrectionDTO, error)
	GradeEssay(answerID uuid.UUID, score float64) error
}

type gradingQueueService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewGradingQueueService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
) GradingQueueService {
	return &gradingQueueService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

func (s *gradingQueueService) ListForTeacher(teacherID uuid.UUID, filter string) ([]dto.EssayCorrectionDTO, error) {
	var corrected *bool
	switch filter {
	case CorrectionFilterPending, "":
		v := false
		corrected = &v
	case CorrectionFilterGraded:
		v := true
		corrected = &v
	case CorrectionFilterAll:
		corrected = nil
	default:
		return nil, apperror.Validation("invalid correction filter %q", filter)
	}

	rows, err := s.answerRepo.FindEssaysByTeacher(teacherID, corrected)
	if err != nil {
		return nil, apperror.Internal("failed to list essay corrections", err)
	}

	dtos := make([]dto.EssayCorrectionDTO, len(rows))
	for i, row := range rows {
		dtos[i] = dto.EssayCorrectionDTO{
			AnswerID:            row.Answer.ID,
			ExamID:              row.Answer.ExamID,
			ExamDescription:     row.ExamDescription,
			ExamScheduledAt:     row.ExamScheduledAt,
			StudentID:           row.Answer.StudentID,
			StudentRegistration: row.StudentRegistration,
			StudentEmail:        row.StudentEmail,
			QuestionID:          row.Answer.QuestionID,
			QuestionTopic:       row.QuestionTopic,
			QuestionPrompt:      row.QuestionPrompt,
			AnswerText:          row.Answer.AnswerText,
			Score:               row.Answer.Score,
			Corrected:           row.Answer.Corrected,
			SubmittedAt:         row.Answer.SubmittedAt,
		}
	}
	return dtos, nil
}

// GradeEssay records a teacher-assigned score in [0,1] for an essay answer.
// Re-grading an already corrected essay overwrites the previous score; the
// last write wins, there is no version check.
func (s *gradingQueueService) GradeEssay(answerID uuid.UUID, score float64) error {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("answer %s not found", answerID)
		}
		return apperror.Internal("failed to load answer", err)
	}

	question, err := s.questionRepo.FindByID(answer.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.InternalConsistency("answer %s references missing question %s", answerID, answer.QuestionID)
		}
		return apperror.Internal("failed to load question", err)
	}
	if question.Type != model.QuestionTypeEssay {
		return apperror.Conflict("only essay questions can be graded manually")
	}

	if score < 0 || score > 1 {
		return apperror.Validation("score must be between 0 and 1, got %v", score)
	}

	answer.Score = &score
	answer.Corrected = true
	if err := s.answerRepo.Update(answer); err != nil {
		log.Error().Err(err).Str("answer_id", answerID.String()).Msg("GradeEssay: failed to persist score")
		return apperror.Internal("failed to persist essay score", err)
	}

	log.Info().
		Str("answer_id", answerID.String()).
		Float64("score", score).
		Msg("Essay graded")
	return nil
}
