// Package controller holds what the teacher, student and admin controller
// packages share: the mapping from the service error taxonomy to HTTP.
package controller

import (
	"net/http"

	"github.com/edupires/examboard/internal/apperror"
	"github.com/edupires/examboard/internal/dto"
	"github.com/gin-gonic/gin"
)

// WriteError maps a service error onto the HTTP response. Internal and
// internal-consistency failures both surface as 500; the latter means the
// stored grading data violates a catalog invariant.
func WriteError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindConflict:
		status = http.StatusConflict
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}
