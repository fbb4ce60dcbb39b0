package student

import (
	"net/http"

	"github.com/edupires/examboard/internal/controller"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// GetAllExams godoc
// @Summary List exams
// @Tags Student - Exams
// @Produce json
// @Success 200 {array} dto.ExamResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get an exam with its participants
// @Tags Student - Exams
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	examID, err := uuid.Parse(ctx.Param("exam_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return
	}

	exam, err := c.examService.GetExam(examID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}
