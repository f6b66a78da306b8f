package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/app/models/dto"
	"github.com/amitk/attendance/internal/app/services"
	"github.com/amitk/attendance/internal/middleware"
	"github.com/amitk/attendance/internal/pkg/apperrors"
)

// AttendanceController handles attendance log operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// GetAllLogs handles GET /attendance_log
func (c *AttendanceController) GetAllLogs(ctx *gin.Context) {
	logs, err := c.attendanceService.GetAllLogs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if logs == nil {
		logs = []*models.AttendanceLog{}
	}
	ctx.JSON(http.StatusOK, logs)
}

// CreateLog handles POST /attendance_log. Both references must resolve;
// nothing is persisted otherwise.
func (c *AttendanceController) CreateLog(ctx *gin.Context) {
	var req dto.CreateAttendanceLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid attendance log data: "+err.Error()))
		return
	}

	if _, err := c.attendanceService.CreateLog(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Attendance log created!"))
}
