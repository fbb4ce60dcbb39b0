package service

import (
	"math"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
)

// ScoreAggregatorService derives a student's final grade for an exam from the
// corrected answers. Uncorrected (pending essay) answers are excluded, so the
// grade can move as essays get graded.
type ScoreAggregatorService interface {
	FinalGrade(examID, studentID uuid.UUID) (*dto.FinalGradeDTO, error)
}

type scoreAggregatorService struct {
	answerRepo repository.AnswerRepository
}

func NewScoreAggregatorService(answerRepo repository.AnswerRepository) ScoreAggregatorService {
	return &scoreAggregatorService{answerRepo: answerRepo}
}

// FinalGrade averages the corrected scores and scales to 0..10, rounded
// half-up to two decimals. Zero corrected answers yields 0.00, not an error.
func (s *scoreAggregatorService) FinalGrade(examID, studentID uuid.UUID) (*dto.FinalGradeDTO, error) {
	answers, err := s.answerRepo.FindByExamAndStudent(examID, studentID)
	if err != nil {
		return nil, apperror.Internal("failed to load answers", err)
	}

	var (
		total     float64
		corrected int
		pending   int
	)
	for i := range answers {
		if answers[i].Corrected && answers[i].Score != nil {
			total += *answers[i].Score
			corrected++
		} else {
			pending++
		}
	}

	grade := 0.0
	if corrected > 0 {
		grade = roundHalfUp(total / float64(corrected) * 10)
	}

	return &dto.FinalGradeDTO{
		ExamID:         examID,
		StudentID:      studentID,
		Grade:          grade,
		CorrectedCount: corrected,
		PendingCount:   pending,
	}, nil
}

// roundHalfUp rounds to two decimal places, ties away from zero.
func roundHalfUp(v float64) float64 {
	return math.Round(v*100) / 100
}
