package repository

import (
	"time"

	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EssayCorrectionRow is an essay answer joined with the exam, student and
// question metadata a teacher needs to grade it.
type EssayCorrectionRow struct {
	model.Answer
	ExamDescription     string
	ExamScheduledAt     time.Time
	StudentRegistration string
	StudentEmail        string
	QuestionTopic       string
	QuestionPrompt      string
}

type AnswerRepository interface {
	Create(answer *model.Answer) error
	Exists(examID, studentID, questionID uuid.UUID) (bool, error)
	FindByID(id uuid.UUID) (*model.Answer, error)
	Update(answer *model.Answer) error
	FindByExamAndStudent(examID, studentID uuid.UUID) ([]model.Answer, error)
	FindEssaysByTeacher(teacherID uuid.UUID, corrected *bool) ([]EssayCorrectionRow, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Create inserts the answer. The composite unique index on
// (exam_id, student_id, question_id) turns a racing duplicate submission into
// gorm.ErrDuplicatedKey, which the service maps to a conflict.
func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Exists(examID, studentID, questionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("exam_id = ? AND student_id = ? AND question_id = ?", examID, studentID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *answerRepository) FindByID(id uuid.UUID) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.Preload("Question").First(&answer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByExamAndStudent(examID, studentID uuid.UUID) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		Order("submitted_at ASC").
		Find(&answers).Error
	return answers, err
}

// FindEssaysByTeacher lists essay answers whose question belongs to the
// teacher, pending ones first, then newest submissions. A nil corrected
// filter returns both pending and graded answers.
func (r *answerRepository) FindEssaysByTeacher(teacherID uuid.UUID, corrected *bool) ([]EssayCorrectionRow, error) {
	var rows []EssayCorrectionRow
	query := r.db.Model(&model.Answer{}).
		Select(`answers.*,
			exams.description AS exam_description,
			exams.scheduled_at AS exam_scheduled_at,
			students.registration AS student_registration,
			students.email AS student_email,
			questions.topic AS question_topic,
			questions.prompt AS question_prompt`).
		Joins("JOIN questions ON questions.id = answers.question_id AND questions.deleted_at IS NULL").
		Joins("JOIN exams ON exams.id = answers.exam_id AND exams.deleted_at IS NULL").
		Joins("JOIN students ON students.id = answers.student_id AND students.deleted_at IS NULL").
		Where("questions.type = ?", model.QuestionTypeEssay).
		Where("questions.teacher_id = ?", teacherID)

	if corrected != nil {
		query = query.Where("answers.corrected = ?", *corrected)
	}

	err := query.
		Order("answers.corrected ASC").
		Order("answers.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}
