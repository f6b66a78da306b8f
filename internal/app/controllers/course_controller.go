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

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses handles GET /courses
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if courses == nil {
		courses = []*models.Course{}
	}
	ctx.JSON(http.StatusOK, courses)
}

// CreateCourse handles POST /courses. The department reference must
// resolve or the request is rejected with a client error.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid course data: "+err.Error()))
		return
	}

	if _, err := c.courseService.CreateCourse(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Course created!"))
}
