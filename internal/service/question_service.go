package service

import (
	"errors"
	"strings"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/model"
	"github.com/edupires/examboard/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService owns question authoring. The type invariants enforced here
// are what the grading side relies on: a single-choice question has at least
// two choices with exactly one correct, a true/false set has at least one
// item with an explicit ground truth, an essay has neither.
type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(id uuid.UUID) (*dto.QuestionResponseDTO, error)
	GetAllQuestions(teacherID *uuid.UUID) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(id uuid.UUID, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uuid.UUID) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	qType := model.QuestionType(req.Type)
	if err := validateQuestionShape(qType, req.ExpectedAnswer, req.Choices, req.Items); err != nil {
		return nil, err
	}

	question := model.Question{
		ID:             uuid.New(),
		Prompt:         req.Prompt,
		Topic:          req.Topic,
		Difficulty:     model.Difficulty(req.Difficulty),
		Type:           qType,
		TeacherID:      req.TeacherID,
		ExpectedAnswer: req.ExpectedAnswer,
		Choices:        buildChoices(req.Choices),
		Items:          buildItems(req.Items),
	}

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, apperror.Internal("failed to create question", err)
	}
	return questionToDTO(&question), nil
}

func (s *questionService) GetQuestion(id uuid.UUID) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question %s not found", id)
		}
		return nil, apperror.Internal("failed to load question", err)
	}
	return questionToDTO(question), nil
}

func (s *questionService) GetAllQuestions(teacherID *uuid.UUID) ([]dto.QuestionResponseDTO, error) {
	var (
		questions []model.Question
		err       error
	)
	if teacherID != nil {
		questions, err = s.repo.FindByTeacherID(*teacherID)
	} else {
		questions, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, apperror.Internal("failed to list questions", err)
	}

	dtos := make([]dto.QuestionResponseDTO, len(questions))
	for i := range questions {
		dtos[i] = *questionToDTO(&questions[i])
	}
	return dtos, nil
}

// UpdateQuestion replaces the question fields and, with them, the whole
// choice/item set. Partial option edits are not supported.
func (s *questionService) UpdateQuestion(id uuid.UUID, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question %s not found", id)
		}
		return nil, apperror.Internal("failed to load question", err)
	}

	qType := model.QuestionType(req.Type)
	if err := validateQuestionShape(qType, req.ExpectedAnswer, req.Choices, req.Items); err != nil {
		return nil, err
	}

	if err := s.repo.ClearOptions(question.ID); err != nil {
		return nil, apperror.Internal("failed to clear question options", err)
	}

	question.Prompt = req.Prompt
	question.Topic = req.Topic
	question.Difficulty = model.Difficulty(req.Difficulty)
	question.Type = qType
	question.ExpectedAnswer = req.ExpectedAnswer
	question.Choices = buildChoices(req.Choices)
	question.Items = buildItems(req.Items)
	for i := range question.Choices {
		question.Choices[i].QuestionID = question.ID
	}
	for i := range question.Items {
		question.Items[i].QuestionID = question.ID
	}

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Str("question_id", id.String()).Msg("Failed to update question")
		return nil, apperror.Internal("failed to update question", err)
	}
	return questionToDTO(question), nil
}

func (s *questionService) DeleteQuestion(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("question %s not found", id)
		}
		return apperror.Internal("failed to load question", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperror.Internal("failed to delete question", err)
	}
	return nil
}

func validateQuestionShape(
	qType model.QuestionType,
	expectedAnswer *string,
	choices []dto.ChoiceCreateDTO,
	items []dto.TrueFalseItemCreateDTO,
) error {
	switch qType {
	case model.QuestionTypeSingleChoice:
		if len(items) > 0 {
			return apperror.Validation("a single-choice question cannot have true/false items")
		}
		if len(choices) < 2 {
			return apperror.Validation("a single-choice question needs at least 2 choices")
		}
		correct := 0
		for _, c := range choices {
			if c.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return apperror.Validation("a single-choice question needs exactly 1 correct choice, got %d", correct)
		}

	case model.QuestionTypeTrueFalseSet:
		if len(choices) > 0 {
			return apperror.Validation("a true/false question cannot have choices")
		}
		if len(items) == 0 {
			return apperror.Validation("a true/false question needs at least 1 item")
		}
		for _, it := range items {
			if strings.TrimSpace(it.Statement) == "" {
				return apperror.Validation("every true/false item needs a statement")
			}
			if it.IsCorrect == nil {
				return apperror.Validation("every true/false item needs an explicit ground truth")
			}
		}

	case model.QuestionTypeEssay:
		if len(choices) > 0 || len(items) > 0 {
			return apperror.Validation("an essay question cannot have choices or items")
		}

	default:
		return apperror.Validation("unknown question type %q", qType)
	}

	if expectedAnswer != nil && qType != model.QuestionTypeEssay {
		return apperror.Validation("expected answer is only allowed on essay questions")
	}
	return nil
}

func buildChoices(reqs []dto.ChoiceCreateDTO) []model.Choice {
	choices := make([]model.Choice, len(reqs))
	for i, c := range reqs {
		choices[i] = model.Choice{ID: uuid.New(), Text: c.Text, IsCorrect: c.IsCorrect}
	}
	return choices
}

func buildItems(reqs []dto.TrueFalseItemCreateDTO) []model.TrueFalseItem {
	items := make([]model.TrueFalseItem, len(reqs))
	for i, it := range reqs {
		items[i] = model.TrueFalseItem{ID: uuid.New(), Statement: it.Statement, IsCorrect: *it.IsCorrect}
	}
	return items
}

func questionToDTO(question *model.Question) *dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy question to DTO")
	}
	return &resp
}
