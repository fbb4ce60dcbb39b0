package repository

import (
	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateStudent(student *model.Student) error
	FindStudentByID(id uuid.UUID) (*model.Student, error)
	FindAllStudents() ([]model.Student, error)
	CreateTeacher(teacher *model.Teacher) error
	FindTeacherByID(id uuid.UUID) (*model.Teacher, error)
	FindAllTeachers() ([]model.Teacher, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateStudent(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *userRepository) FindStudentByID(id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *userRepository) FindAllStudents() ([]model.Student, error) {
	var students []model.Student
	if err := r.db.Order("registration asc").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *userRepository) CreateTeacher(teacher *model.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *userRepository) FindTeacherByID(id uuid.UUID) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.First(&teacher, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *userRepository) FindAllTeachers() ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := r.db.Order("name asc").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}
