package service

import (
	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// UserService is plain account plumbing: the grading core only needs students
// and teachers to exist so answers and questions have someone to point at.
type UserService interface {
	CreateStudent(req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error)
	GetAllStudents() ([]dto.StudentResponseDTO, error)
	CreateTeacher(req dto.TeacherCreateDTO) (*dto.TeacherResponseDTO, error)
	GetAllTeachers() ([]dto.TeacherResponseDTO, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateStudent(req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error) {
	student := model.Student{
		ID:           uuid.New(),
		Registration: req.Registration,
		Email:        req.Email,
	}
	if err := s.repo.CreateStudent(&student); err != nil {
		log.Error().Err(err).Msg("Failed to create student")
		return nil, apperror.Internal("failed to create student", err)
	}
	var resp dto.StudentResponseDTO
	if err := copier.Copy(&resp, &student); err != nil {
		log.Error().Err(err).Msg("Failed to copy student to DTO")
	}
	return &resp, nil
}

func (s *userService) GetAllStudents() ([]dto.StudentResponseDTO, error) {
	students, err := s.repo.FindAllStudents()
	if err != nil {
		return nil, apperror.Internal("failed to list students", err)
	}
	var resp []dto.StudentResponseDTO
	if err := copier.Copy(&resp, &students); err != nil {
		log.Error().Err(err).Msg("Failed to copy students to DTOs")
	}
	return resp, nil
}

func (s *userService) CreateTeacher(req dto.TeacherCreateDTO) (*dto.TeacherResponseDTO, error) {
	teacher := model.Teacher{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.repo.CreateTeacher(&teacher); err != nil {
		log.Error().Err(err).Msg("Failed to create teacher")
		return nil, apperror.Internal("failed to create teacher", err)
	}
	var resp dto.TeacherResponseDTO
	if err := copier.Copy(&resp, &teacher); err != nil {
		log.Error().Err(err).Msg("Failed to copy teacher to DTO")
	}
	return &resp, nil
}

func (s *userService) GetAllTeachers() ([]dto.TeacherResponseDTO, error) {
	teachers, err := s.repo.FindAllTeachers()
	if err != nil {
		return nil, apperror.Internal("failed to list teachers", err)
	}
	var resp []dto.TeacherResponseDTO
	if err := copier.Copy(&resp, &teachers); err != nil {
		log.Error().Err(err).Msg("Failed to copy teachers to DTOs")
	}
	return resp, nil
}
