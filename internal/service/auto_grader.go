package service

import (
	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AutoGraderService scores objective answers from the question's stored
// grading data. It only fills in Score and Corrected on the answer; the
// submission service persists the result, so a grading failure leaves no
// partially graded row behind.
type AutoGraderService interface {
	Grade(answer *model.Answer, question *model.Question) error
}

type autoGraderService struct{}

func NewAutoGraderService() AutoGraderService {
	return &autoGraderService{}
}

// Grade sets score and corrected=true for single-choice and true/false-set
// answers. Essay answers are left untouched; only a teacher grades those.
func (s *autoGraderService) Grade(answer *model.Answer, question *model.Question) error {
	var score float64

	switch question.Type {
	case model.QuestionTypeSingleChoice:
		correct, err := correctChoice(question)
		if err != nil {
			return err
		}
		chosen := choiceByID(question.Choices, *answer.ChoiceID)
		if chosen == nil {
			return apperror.InternalConsistency(
				"chosen choice %s does not belong to question %s", answer.ChoiceID, question.ID)
		}
		if chosen.ID == correct.ID {
			score = 1
		}

	case model.QuestionTypeTrueFalseSet:
		item := itemByID(question.Items, *answer.ItemID)
		if item == nil {
			return apperror.InternalConsistency(
				"true/false item %s does not belong to question %s", answer.ItemID, question.ID)
		}
		if item.IsCorrect == *answer.ItemAnswer {
			score = 1
		}

	case model.QuestionTypeEssay:
		return nil

	default:
		return apperror.InternalConsistency("question %s has unknown type %q", question.ID, question.Type)
	}

	answer.Score = &score
	answer.Corrected = true

	log.Info().
		Str("answer_id", answer.ID.String()).
		Str("question_id", question.ID.String()).
		Float64("score", score).
		Msg("Answer graded automatically")
	return nil
}

// correctChoice re-checks the authoring invariant at grading time: exactly one
// choice of a single-choice question is marked correct.
func correctChoice(question *model.Question) (*model.Choice, error) {
	var correct *model.Choice
	for i := range question.Choices {
		if question.Choices[i].IsCorrect {
			if correct != nil {
				return nil, apperror.InternalConsistency(
					"question %s has more than one correct choice", question.ID)
			}
			correct = &question.Choices[i]
		}
	}
	if correct == nil {
		return nil, apperror.InternalConsistency(
			"question %s has no correct choice", question.ID)
	}
	return correct, nil
}

func choiceByID(choices []model.Choice, id uuid.UUID) *model.Choice {
	for i := range choices {
		if choices[i].ID == id {
			return &choices[i]
		}
	}
	return nil
}

func itemByID(items []model.TrueFalseItem, id uuid.UUID) *model.TrueFalseItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
