package service

import (
	"testing"
	"time"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
)

func enrolledStudent(userRepo *fakeUserRepo) *model.Student {
	student := &model.Student{ID: uuid.New(), Registration: "2024-001", Email: "student@example.edu"}
	userRepo.students[student.ID] = student
	return student
}

func TestCreateExamWithParticipants(t *testing.T) {
	examRepo := newFakeExamRepo()
	userRepo := newFakeUserRepo()
	student := enrolledStudent(userRepo)
	svc := NewExamService(examRepo, userRepo)

	got, err := svc.CreateExam(dto.ExamCreateDTO{
		Description: "Midterm",
		ScheduledAt: time.Now().Add(48 * time.Hour),
		StudentIDs:  []uuid.UUID{student.ID},
	})
	if err != nil {
		t.Fatalf("CreateExam returned error: %v", err)
	}
	if len(got.Participants) != 1 || got.Participants[0].StudentID != student.ID {
		t.Fatalf("participants = %+v, want the enrolled student", got.Participants)
	}
	if _, ok := examRepo.exams[got.ID]; !ok {
		t.Fatal("exam not persisted")
	}
}

func TestCreateExamRejectsDuplicateStudent(t *testing.T) {
	examRepo := newFakeExamRepo()
	userRepo := newFakeUserRepo()
	student := enrolledStudent(userRepo)
	svc := NewExamService(examRepo, userRepo)

	_, err := svc.CreateExam(dto.ExamCreateDTO{
		Description: "Midterm",
		ScheduledAt: time.Now(),
		StudentIDs:  []uuid.UUID{student.ID, student.ID},
	})
	if kind := apperror.KindOf(err); kind != apperror.KindValidation {
		t.Fatalf("error kind = %v, want validation", kind)
	}
	if len(examRepo.exams) != 0 {
		t.Fatal("exam must not be persisted")
	}
}

func TestCreateExamRejectsUnknownStudent(t *testing.T) {
	examRepo := newFakeExamRepo()
	svc := NewExamService(examRepo, newFakeUserRepo())

	_, err := svc.CreateExam(dto.ExamCreateDTO{
		Description: "Midterm",
		ScheduledAt: time.Now(),
		StudentIDs:  []uuid.UUID{uuid.New()},
	})
	if kind := apperror.KindOf(err); kind != apperror.KindValidation {
		t.Fatalf("error kind = %v, want validation", kind)
	}
}

func TestGetExamNotFound(t *testing.T) {
	svc := NewExamService(newFakeExamRepo(), newFakeUserRepo())
	_, err := svc.GetExam(uuid.New())
	if kind := apperror.KindOf(err); kind != apperror.KindNotFound {
		t.Fatalf("error kind = %v, want not_found", kind)
	}
}
