package service

import (
	"testing"

	"github.com/edupires/examboard/internal/dto"
	"github.com/google/uuid"
)

func TestCreateStudent(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	got, err := svc.CreateStudent(dto.StudentCreateDTO{Registration: "2024-001", Email: "student@example.edu"})
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatal("created student has no id")
	}
	if got.Registration != "2024-001" || got.Email != "student@example.edu" {
		t.Fatalf("response not mapped from request: %+v", got)
	}
	if _, ok := userRepo.students[got.ID]; !ok {
		t.Fatal("student not persisted")
	}
}

func TestCreateTeacherAndList(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	created, err := svc.CreateTeacher(dto.TeacherCreateDTO{Name: "Prof. Silva", Email: "silva@example.edu"})
	if err != nil {
		t.Fatalf("CreateTeacher returned error: %v", err)
	}

	teachers, err := svc.GetAllTeachers()
	if err != nil {
		t.Fatalf("GetAllTeachers returned error: %v", err)
	}
	if len(teachers) != 1 || teachers[0].ID != created.ID || teachers[0].Name != "Prof. Silva" {
		t.Fatalf("listing = %+v, want the created teacher", teachers)
	}
}

func TestGetAllStudentsEmpty(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	students, err := svc.GetAllStudents()
	if err != nil {
		t.Fatalf("GetAllStudents returned error: %v", err)
	}
	if len(students) != 0 {
		t.Fatalf("got %d students, want none", len(students))
	}
}
