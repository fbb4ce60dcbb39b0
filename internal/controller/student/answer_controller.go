package student

import (
	"net/http"

	"github.com/edupires/examboard/internal/controller"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	submissionService service.AnswerSubmissionService
	aggregatorService service.ScoreAggregatorService
}

func NewAnswerController(
	submissionService service.AnswerSubmissionService,
	aggregatorService service.ScoreAggregatorService,
) *AnswerController {
	return &AnswerController{
		submissionService: submissionService,
		aggregatorService: aggregatorService,
	}
}

// SubmitAnswer godoc
// @Summary (Student) Submit an answer
// @Description Submit one answer for one question of an exam. Objective answers come back already scored; essays stay pending until a teacher grades them.
// @Tags Student - Answers
// @Accept json
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param student_id path string true "Student ID"
// @Param answer body dto.AnswerSubmitDTO true "Question ID plus the payload matching the question type"
// @Success 201 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Payload does not match the question type"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Question already answered"
// @Router /student/exams/{exam_id}/students/{student_id}/answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	examID, err := uuid.Parse(ctx.Param("exam_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return
	}
	studentID, err := uuid.Parse(ctx.Param("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student ID format"})
		return
	}

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.submissionService.Submit(examID, studentID, req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, answer)
}

// ListAnswers godoc
// @Summary (Student) List submitted answers
// @Tags Student - Answers
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param student_id path string true "Student ID"
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/exams/{exam_id}/students/{student_id}/answers [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	examID, err := uuid.Parse(ctx.Param("exam_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return
	}
	studentID, err := uuid.Parse(ctx.Param("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student ID format"})
		return
	}

	answers, err := c.submissionService.ListForStudent(examID, studentID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetFinalGrade godoc
// @Summary (Student) Final grade for an exam
// @Description Average of corrected scores scaled to 0..10 with two decimals. Pending essays are excluded; the corrected/pending counts say how settled the grade is.
// @Tags Student - Answers
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Param student_id path string true "Student ID"
// @Success 200 {object} dto.FinalGradeDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/exams/{exam_id}/students/{student_id}/grade [get]
func (c *AnswerController) GetFinalGrade(ctx *gin.Context) {
	examID, err := uuid.Parse(ctx.Param("exam_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return
	}
	studentID, err := uuid.Parse(ctx.Param("student_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student ID format"})
		return
	}

	grade, err := c.aggregatorService.FinalGrade(examID, studentID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grade)
}
