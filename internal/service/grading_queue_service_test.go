package service

import (
	"testing"
	"time"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
)

func essayAnswerFixture(questionRepo *fakeQuestionRepo, answerRepo *fakeAnswerRepo) *model.Answer {
	question := &model.Question{ID: uuid.New(), Type: model.QuestionTypeEssay, TeacherID: uuid.New()}
	questionRepo.questions[question.ID] = question

	answer := &model.Answer{
		ID:          uuid.New(),
		ExamID:      uuid.New(),
		StudentID:   uuid.New(),
		QuestionID:  question.ID,
		AnswerText:  strPtr("student essay text"),
		SubmittedAt: time.Now(),
	}
	answerRepo.answers[answer.ID] = answer
	return answer
}

func TestGradeEssay(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	answer := essayAnswerFixture(questionRepo, answerRepo)
	svc := NewGradingQueueService(answerRepo, questionRepo)

	if err := svc.GradeEssay(answer.ID, 0.8); err != nil {
		t.Fatalf("GradeEssay returned error: %v", err)
	}

	stored, _ := answerRepo.FindByID(answer.ID)
	if !stored.Corrected {
		t.Fatal("answer should be corrected after manual grading")
	}
	if stored.Score == nil || *stored.Score != 0.8 {
		t.Fatalf("score = %v, want 0.8", stored.Score)
	}
}

func TestGradeEssayRegradeOverwrites(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	answerRepo := newFakeAnswerRepo()
	answer := essayAnswerFixture(questionRepo, answerRepo)
	svc := NewGradingQueueService(answerRepo, questionRepo)

	if err := svc.GradeEssay(answer.ID, 0.5); err != nil {
		t.Fatalf("first grade: %v", err)
	}
	if err := svc.GradeEssay(answer.ID, 1); err != nil {
		t.Fatalf("regrade: %v", err)
	}

	stored, _ := answerRepo.FindByID(answer.ID)
	if stored.Score == nil || *stored.Score != 1 {
		t.Fatalf("score after regrade = %v, want 1", stored.Score)
	}
}

func TestGradeEssayScoreOutOfRange(t *testing.T) {
	for _, score := range []float64{-0.01, 1.01, 5} {
		questionRepo := newFakeQuestionRepo()
		answerRepo := newFakeAnswerRepo()
		answer := essayAnswerFixture(questionRepo, answerRepo)
		svc := NewGradingQueueService(answerRepo, questionRepo)

		err := svc.GradeEssay(answer.ID, score)
		if kind := apperror.KindOf(err); kind != apperror.KindValidation {
			t.Fatalf("score %v: error kind = %v, want validation", score, kind)
		}

		stored, _ := answerRepo.FindByID(answer.ID)
		if stored.Corrected || stored.Score != nil {
			t.Fatalf("score %v: answer must be left unchanged", score)
		}
	}
}

func TestGradeEssayNonEssayQuestion(t *testing.T) {
	question := singleChoiceQuestion(true, false)
	questionRepo := newFakeQuestionRepo(question)
	answerRepo := newFakeAnswerRepo()

	answer := &model.Answer{
		ID:         uuid.New(),
		QuestionID: question.ID,
		ChoiceID:   uuidPtr(question.Choices[0].ID),
	}
	answerRepo.answers[answer.ID] = answer

	svc := NewGradingQueueService(answerRepo, questionRepo)
	err := svc.GradeEssay(answer.ID, 0.5)
	if kind := apperror.KindOf(err); kind != apperror.KindConflict {
		t.Fatalf("error kind = %v, want conflict", kind)
	}
}

func TestGradeEssayUnknownAnswer(t *testing.T) {
	svc := NewGradingQueueService(newFakeAnswerRepo(), newFakeQuestionRepo())
	err := svc.GradeEssay(uuid.New(), 0.5)
	if kind := apperror.KindOf(err); kind != apperror.KindNotFound {
		t.Fatalf("error kind = %v, want not_found", kind)
	}
}

func TestListForTeacherFilters(t *testing.T) {
	tests := []struct {
		name          string
		filter        string
		wantErr       bool
		wantCorrected *bool
	}{
		{name: "pending", filter: "pending", wantCorrected: boolPtr(false)},
		{name: "default is pending", filter: "", wantCorrected: boolPtr(false)},
		{name: "graded", filter: "graded", wantCorrected: boolPtr(true)},
		{name: "all", filter: "all", wantCorrected: nil},
		{name: "unknown filter rejected", filter: "finished", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			answerRepo := newFakeAnswerRepo()
			svc := NewGradingQueueService(answerRepo, newFakeQuestionRepo())

			_, err := svc.ListForTeacher(uuid.New(), tc.filter)
			if tc.wantErr {
				if kind := apperror.KindOf(err); kind != apperror.KindValidation {
					t.Fatalf("error kind = %v, want validation", kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListForTeacher returned error: %v", err)
			}
			if !answerRepo.essayFilterSet {
				t.Fatal("repository was not queried")
			}
			switch {
			case tc.wantCorrected == nil:
				if answerRepo.lastEssayFilter != nil {
					t.Fatalf("corrected filter = %v, want nil", *answerRepo.lastEssayFilter)
				}
			case answerRepo.lastEssayFilter == nil:
				t.Fatalf("corrected filter = nil, want %v", *tc.wantCorrected)
			case *answerRepo.lastEssayFilter != *tc.wantCorrected:
				t.Fatalf("corrected filter = %v, want %v", *answerRepo.lastEssayFilter, *tc.wantCorrected)
			}
		})
	}
}

func TestListForTeacherMapsRows(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	submitted := time.Now()
	answerRepo.essayRows = []repository.EssayCorrectionRow{{
		Answer: model.Answer{
			ID:          uuid.New(),
			ExamID:      uuid.New(),
			StudentID:   uuid.New(),
			QuestionID:  uuid.New(),
			AnswerText:  strPtr("essay text"),
			SubmittedAt: submitted,
		},
		ExamDescription:     "Midterm",
		StudentRegistration: "2024-001",
		StudentEmail:        "student@example.edu",
		QuestionTopic:       "Databases",
		QuestionPrompt:      "Explain normalization.",
	}}

	svc := NewGradingQueueService(answerRepo, newFakeQuestionRepo())
	got, err := svc.ListForTeacher(uuid.New(), "all")
	if err != nil {
		t.Fatalf("ListForTeacher returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	row := got[0]
	if row.ExamDescription != "Midterm" || row.StudentRegistration != "2024-001" ||
		row.QuestionTopic != "Databases" || row.AnswerText == nil || *row.AnswerText != "essay text" {
		t.Fatalf("row not mapped from repository data: %+v", row)
	}
	if row.Corrected {
		t.Fatal("pending row must not be corrected")
	}
}
