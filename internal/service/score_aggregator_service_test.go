package service

import (
	"testing"

	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
)

func correctedAnswer(examID, studentID uuid.UUID, score float64) *model.Answer {
	return &model.Answer{
		ID:         uuid.New(),
		ExamID:     examID,
		StudentID:  studentID,
		QuestionID: uuid.New(),
		Score:      &score,
		Corrected:  true,
	}
}

func pendingAnswer(examID, studentID uuid.UUID) *model.Answer {
	return &model.Answer{
		ID:         uuid.New(),
		ExamID:     examID,
		StudentID:  studentID,
		QuestionID: uuid.New(),
	}
}

func TestFinalGrade(t *testing.T) {
	tests := []struct {
		name          string
		scores        []float64
		pending       int
		wantGrade     float64
		wantCorrected int
	}{
		{name: "no answers", wantGrade: 0},
		{name: "all pending", pending: 3, wantGrade: 0},
		{name: "perfect and partial", scores: []float64{1, 0.8}, wantGrade: 9, wantCorrected: 2},
		{name: "repeating average rounds after scaling", scores: []float64{1, 0, 1}, wantGrade: 6.67, wantCorrected: 3},
		{name: "pending answers excluded", scores: []float64{1, 1}, pending: 2, wantGrade: 10, wantCorrected: 2},
		{name: "all zero", scores: []float64{0, 0}, wantGrade: 0, wantCorrected: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			examID := uuid.New()
			studentID := uuid.New()
			answerRepo := newFakeAnswerRepo()
			for _, score := range tc.scores {
				a := correctedAnswer(examID, studentID, score)
				answerRepo.answers[a.ID] = a
			}
			for i := 0; i < tc.pending; i++ {
				a := pendingAnswer(examID, studentID)
				answerRepo.answers[a.ID] = a
			}

			svc := NewScoreAggregatorService(answerRepo)
			got, err := svc.FinalGrade(examID, studentID)
			if err != nil {
				t.Fatalf("FinalGrade returned error: %v", err)
			}
			if got.Grade != tc.wantGrade {
				t.Fatalf("grade = %v, want %v", got.Grade, tc.wantGrade)
			}
			if got.CorrectedCount != tc.wantCorrected {
				t.Fatalf("corrected count = %d, want %d", got.CorrectedCount, tc.wantCorrected)
			}
			if got.PendingCount != tc.pending {
				t.Fatalf("pending count = %d, want %d", got.PendingCount, tc.pending)
			}
		})
	}
}

func TestFinalGradeIgnoresOtherStudents(t *testing.T) {
	examID := uuid.New()
	studentID := uuid.New()
	answerRepo := newFakeAnswerRepo()

	mine := correctedAnswer(examID, studentID, 1)
	answerRepo.answers[mine.ID] = mine
	other := correctedAnswer(examID, uuid.New(), 0)
	answerRepo.answers[other.ID] = other

	svc := NewScoreAggregatorService(answerRepo)
	got, err := svc.FinalGrade(examID, studentID)
	if err != nil {
		t.Fatalf("FinalGrade returned error: %v", err)
	}
	if got.Grade != 10 || got.CorrectedCount != 1 {
		t.Fatalf("grade = %v corrected = %d, want 10 and 1", got.Grade, got.CorrectedCount)
	}
}
