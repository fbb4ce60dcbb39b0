package service

import (
	"errors"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rs/zerolog/log"
)

type ExamService interface {
	CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	GetExam(id uuid.UUID) (*dto.ExamResponseDTO, error)
	GetAllExams() ([]dto.ExamResponseDTO, error)
}

type examService struct {
	examRepo repository.ExamRepository
	userRepo repository.UserRepository
}

func NewExamService(examRepo repository.ExamRepository, userRepo repository.UserRepository) ExamService {
	return &examService{examRepo: examRepo, userRepo: userRepo}
}

func (s *examService) CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	exam := model.Exam{
		ID:          uuid.New(),
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
	}

	seen := make(map[uuid.UUID]bool)
	for _, studentID := range req.StudentIDs {
		if seen[studentID] {
			return nil, apperror.Validation("student %s enrolled twice in the same exam", studentID)
		}
		seen[studentID] = true

		if _, err := s.userRepo.FindStudentByID(studentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.Validation("student %s does not exist", studentID)
			}
			return nil, apperror.Internal("failed to load student", err)
		}
		exam.Participants = append(exam.Participants, model.ExamParticipation{
			ExamID:    exam.ID,
			StudentID: studentID,
		})
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		return nil, apperror.Internal("failed to create exam", err)
	}

	created, err := s.examRepo.FindByID(exam.ID)
	if err != nil {
		log.Warn().Err(err).Str("exam_id", exam.ID.String()).Msg("Failed to reload created exam")
		return examToDTO(&exam), nil
	}
	return examToDTO(created), nil
}

func (s *examService) GetExam(id uuid.UUID) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("exam %s not found", id)
		}
		return nil, apperror.Internal("failed to load exam", err)
	}
	return examToDTO(exam), nil
}

func (s *examService) GetAllExams() ([]dto.ExamResponseDTO, error) {
	exams, err := s.examRepo.FindAll()
	if err != nil {
		return nil, apperror.Internal("failed to list exams", err)
	}

	dtos := make([]dto.ExamResponseDTO, len(exams))
	for i := range exams {
		dtos[i] = *examToDTO(&exams[i])
	}
	return dtos, nil
}

func examToDTO(exam *model.Exam) *dto.ExamResponseDTO {
	resp := dto.ExamResponseDTO{
		ID:          exam.ID,
		Description: exam.Description,
		ScheduledAt: exam.ScheduledAt,
		CreatedAt:   exam.CreatedAt,
	}
	for _, p := range exam.Participants {
		resp.Participants = append(resp.Participants, dto.ExamParticipantDTO{
			StudentID:    p.StudentID,
			Registration: p.Student.Registration,
			Email:        p.Student.Email,
		})
	}
	return &resp
}
