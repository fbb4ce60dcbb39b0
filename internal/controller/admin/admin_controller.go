package admin

import (
	"net/http"

	"github.com/edupires/examboard/internal/controller"
	"github.com/edupires/examboard/internal/dto"
	"github.com/edupires/examboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AdminController covers the account and exam plumbing around the grading
// core.
type AdminController struct {
	userService service.UserService
	examService service.ExamService
}

func NewAdminController(userService service.UserService, examService service.ExamService) *AdminController {
	return &AdminController{userService: userService, examService: examService}
}

// CreateStudent godoc
// @Summary (Admin) Create a student
// @Tags Admin
// @Accept json
// @Produce json
// @Param student body dto.StudentCreateDTO true "Student"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	student, err := c.userService.CreateStudent(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// GetAllStudents godoc
// @Summary (Admin) List students
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/students [get]
func (c *AdminController) GetAllStudents(ctx *gin.Context) {
	students, err := c.userService.GetAllStudents()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CreateTeacher godoc
// @Summary (Admin) Create a teacher
// @Tags Admin
// @Accept json
// @Produce json
// @Param teacher body dto.TeacherCreateDTO true "Teacher"
// @Success 201 {object} dto.TeacherResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/teachers [post]
func (c *AdminController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	teacher, err := c.userService.CreateTeacher(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, teacher)
}

// GetAllTeachers godoc
// @Summary (Admin) List teachers
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.TeacherResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/teachers [get]
func (c *AdminController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.userService.GetAllTeachers()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teachers)
}

// CreateExam godoc
// @Summary (Admin) Create an exam
// @Description Create an exam with its student participations. A student can appear at most once.
// @Tags Admin
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/exams [post]
func (c *AdminController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateExam: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.examService.CreateExam(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}
