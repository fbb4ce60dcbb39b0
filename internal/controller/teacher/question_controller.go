package teacher

import (
	"net/http"

	"github.com/edupires/examboard/internal/controller"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Teacher) Create a question
// @Description Create a question with its choices (single_choice) or true/false items (true_false_set). Essay questions take neither.
// @Tags Teacher - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question definition"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Type-specific validation failed"
// @Failure 500 {object} dto.ErrorResponse
// @Router /teacher/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetQuestion godoc
// @Summary (Teacher) Get a question
// @Tags Teacher - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	questionID, err := uuid.Parse(ctx.Param("question_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	question, err := c.questionService.GetQuestion(questionID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetAllQuestions godoc
// @Summary (Teacher) List questions
// @Description List all questions, optionally restricted to one teacher.
// @Tags Teacher - Questions
// @Produce json
// @Param teacher_id query string false "Filter by owning teacher"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /teacher/questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	var teacherID *uuid.UUID
	if raw := ctx.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid teacher ID format"})
			return
		}
		teacherID = &id
	}

	questions, err := c.questionService.GetAllQuestions(teacherID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary (Teacher) Update a question
// @Description Replace the question fields and its whole option set.
// @Tags Teacher - Questions
// @Accept json
// @Produce json
// @Param question_id path string true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "New question definition"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	questionID, err := uuid.Parse(ctx.Param("question_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(questionID, req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Teacher) Delete a question
// @Tags Teacher - Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	questionID, err := uuid.Parse(ctx.Param("question_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	if err := c.questionService.DeleteQuestion(questionID); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
