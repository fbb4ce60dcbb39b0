package repository

import (
	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uuid.UUID) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindByTeacherID(teacherID uuid.UUID) ([]model.Question, error)
	Update(question *model.Question) error
	ClearOptions(questionID uuid.UUID) error
	Delete(id uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// GORM creates the associated choices/items in the same insert.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.
		Preload("Choices").
		Preload("Items").
		First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.
		Preload("Choices").
		Preload("Items").
		Order("created_at desc").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTeacherID(teacherID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.
		Preload("Choices").
		Preload("Items").
		Where("teacher_id = ?", teacherID).
		Order("created_at desc").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

// ClearOptions removes every choice and true/false item of a question. Used
// when an update replaces the option set wholesale.
func (r *questionRepository) ClearOptions(questionID uuid.UUID) error {
	if err := r.db.Where("question_id = ?", questionID).Delete(&model.Choice{}).Error; err != nil {
		return err
	}
	return r.db.Where("question_id = ?", questionID).Delete(&model.TrueFalseItem{}).Error
}

func (r *questionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Question{}, "id = ?", id).Error
}
