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

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments handles GET /departments
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if departments == nil {
		departments = []*models.Department{}
	}
	ctx.JSON(http.StatusOK, departments)
}

// CreateDepartment handles POST /departments
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid department data: "+err.Error()))
		return
	}

	if _, err := c.departmentService.CreateDepartment(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Department created!"))
}
