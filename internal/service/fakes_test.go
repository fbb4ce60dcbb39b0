package service

import (
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the persistence contract the
// services rely on: ErrRecordNotFound for misses and ErrDuplicatedKey when the
// answers unique index fires.

type fakeQuestionRepo struct {
	questions map[uuid.UUID]*model.Question
	cleared   []uuid.UUID
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[uuid.UUID]*model.Question)}
	for _, q := range questions {
		repo.questions[q.ID] = q
	}
	return repo
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uuid.UUID) (*model.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *question
	return &cp, nil
}

func (r *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindByTeacherID(teacherID uuid.UUID) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.TeacherID == teacherID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) ClearOptions(questionID uuid.UUID) error {
	r.cleared = append(r.cleared, questionID)
	if q, ok := r.questions[questionID]; ok {
		q.Choices = nil
		q.Items = nil
	}
	return nil
}

func (r *fakeQuestionRepo) Delete(id uuid.UUID) error {
	delete(r.questions, id)
	return nil
}

type answerKey struct {
	examID, studentID, questionID uuid.UUID
}

type fakeAnswerRepo struct {
	answers  map[uuid.UUID]*model.Answer
	byTriple map[answerKey]uuid.UUID

	// forceDuplicateOnCreate simulates the racing duplicate that slips past
	// the Exists check and lands on the unique index.
	forceDuplicateOnCreate bool

	essayRows       []repository.EssayCorrectionRow
	lastEssayFilter *bool
	essayFilterSet  bool
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{
		answers:  make(map[uuid.UUID]*model.Answer),
		byTriple: make(map[answerKey]uuid.UUID),
	}
}

func (r *fakeAnswerRepo) key(a *model.Answer) answerKey {
	return answerKey{a.ExamID, a.StudentID, a.QuestionID}
}

func (r *fakeAnswerRepo) Create(answer *model.Answer) error {
	if r.forceDuplicateOnCreate {
		return gorm.ErrDuplicatedKey
	}
	if _, dup := r.byTriple[r.key(answer)]; dup {
		return gorm.ErrDuplicatedKey
	}
	cp := *answer
	r.answers[answer.ID] = &cp
	r.byTriple[r.key(answer)] = answer.ID
	return nil
}

func (r *fakeAnswerRepo) Exists(examID, studentID, questionID uuid.UUID) (bool, error) {
	_, ok := r.byTriple[answerKey{examID, studentID, questionID}]
	return ok, nil
}

func (r *fakeAnswerRepo) FindByID(id uuid.UUID) (*model.Answer, error) {
	answer, ok := r.answers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *answer
	return &cp, nil
}

func (r *fakeAnswerRepo) Update(answer *model.Answer) error {
	cp := *answer
	r.answers[answer.ID] = &cp
	return nil
}

func (r *fakeAnswerRepo) FindByExamAndStudent(examID, studentID uuid.UUID) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range r.answers {
		if a.ExamID == examID && a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) FindEssaysByTeacher(teacherID uuid.UUID, corrected *bool) ([]repository.EssayCorrectionRow, error) {
	r.lastEssayFilter = corrected
	r.essayFilterSet = true
	return r.essayRows, nil
}

type fakeExamRepo struct {
	exams map[uuid.UUID]*model.Exam
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{exams: make(map[uuid.UUID]*model.Exam)}
}

func (r *fakeExamRepo) Create(exam *model.Exam) error {
	cp := *exam
	r.exams[exam.ID] = &cp
	return nil
}

func (r *fakeExamRepo) FindByID(id uuid.UUID) (*model.Exam, error) {
	exam, ok := r.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *exam
	return &cp, nil
}

func (r *fakeExamRepo) FindAll() ([]model.Exam, error) {
	var out []model.Exam
	for _, e := range r.exams {
		out = append(out, *e)
	}
	return out, nil
}

type fakeUserRepo struct {
	students map[uuid.UUID]*model.Student
	teachers map[uuid.UUID]*model.Teacher
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		students: make(map[uuid.UUID]*model.Student),
		teachers: make(map[uuid.UUID]*model.Teacher),
	}
}

func (r *fakeUserRepo) CreateStudent(student *model.Student) error {
	r.students[student.ID] = student
	return nil
}

func (r *fakeUserRepo) FindStudentByID(id uuid.UUID) (*model.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (r *fakeUserRepo) FindAllStudents() ([]model.Student, error) {
	var out []model.Student
	for _, s := range r.students {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeUserRepo) CreateTeacher(teacher *model.Teacher) error {
	r.teachers[teacher.ID] = teacher
	return nil
}

func (r *fakeUserRepo) FindTeacherByID(id uuid.UUID) (*model.Teacher, error) {
	teacher, ok := r.teachers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return teacher, nil
}

func (r *fakeUserRepo) FindAllTeachers() ([]model.Teacher, error) {
	var out []model.Teacher
	for _, t := range r.teachers {
		out = append(out, *t)
	}
	return out, nil
}

func boolPtr(v bool) *bool           { return &v }
func strPtr(v string) *string        { return &v }
func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }
