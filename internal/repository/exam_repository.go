package repository

import (
	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uuid.UUID) (*model.Exam, error)
	FindAll() ([]model.Exam, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	// Participations are created together with the exam row.
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uuid.UUID) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.
		Preload("Participants.Student").
		First(&exam, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAll() ([]model.Exam, error) {
	var exams []model.Exam
	if err := r.db.Order("scheduled_at desc").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}
