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

type GradingController struct {
	gradingQueueService service.GradingQueueService
}

func NewGradingController(gradingQueueService service.GradingQueueService) *GradingController {
	return &GradingController{gradingQueueService: gradingQueueService}
}

// ListCorrections godoc
// @Summary (Teacher) List essay answers to correct
// @Description Essay answers for questions owned by the teacher, pending ones first, newest submissions next.
// @Tags Teacher - Corrections
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Param status query string false "pending (default), graded or all"
// @Success 200 {array} dto.EssayCorrectionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID or status"
// @Failure 500 {object} dto.ErrorResponse
// @Router /teacher/teachers/{teacher_id}/corrections [get]
func (c *GradingController) ListCorrections(ctx *gin.Context) {
	teacherID, err := uuid.Parse(ctx.Param("teacher_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid teacher ID format"})
		return
	}

	corrections, err := c.gradingQueueService.ListForTeacher(teacherID, ctx.Query("status"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, corrections)
}

// GradeEssay godoc
// @Summary (Teacher) Grade an essay answer
// @Description Assign a score in [0,1] to an essay answer. Grading again overwrites the previous score.
// @Tags Teacher - Corrections
// @Accept json
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Param answer_id path string true "Answer ID"
// @Param grade body dto.EssayGradeDTO true "Score in [0,1]"
// @Success 200 "Essay graded"
// @Failure 400 {object} dto.ErrorResponse "Score out of range"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 409 {object} dto.ErrorResponse "Not an essay question"
// @Router /teacher/teachers/{teacher_id}/corrections/{answer_id} [put]
func (c *GradingController) GradeEssay(ctx *gin.Context) {
	// teacher_id identifies the caller but ownership of the question is not
	// re-verified here; the queue listing is already scoped per teacher.
	if _, err := uuid.Parse(ctx.Param("teacher_id")); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid teacher ID format"})
		return
	}
	answerID, err := uuid.Parse(ctx.Param("answer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answer ID format"})
		return
	}

	var req dto.EssayGradeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GradeEssay: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.gradingQueueService.GradeEssay(answerID, *req.Score); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}
