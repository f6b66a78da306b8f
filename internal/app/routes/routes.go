// Package routes wires HTTP endpoints to their controllers
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amitk/attendance/internal/app/controllers"
	"github.com/amitk/attendance/internal/middleware"
	"github.com/amitk/attendance/internal/pkg/metrics"
)

// Controllers groups the controller instances the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Department *controllers.DepartmentController
	Course     *controllers.CourseController
	Student    *controllers.StudentController
	Attendance *controllers.AttendanceController
}

// SetupRoutes registers all endpoints. Registration and login are
// public; every resource route requires a valid bearer token.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	router.POST("/register", ctrl.Auth.Register)
	router.POST("/login", ctrl.Auth.Login)

	protected := router.Group("/")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.GET("/users", ctrl.User.GetAllUsers)
		protected.POST("/users", ctrl.User.CreateUser)

		protected.GET("/departments", ctrl.Department.GetAllDepartments)
		protected.POST("/departments", ctrl.Department.CreateDepartment)

		protected.GET("/courses", ctrl.Course.GetAllCourses)
		protected.POST("/courses", ctrl.Course.CreateCourse)

		protected.GET("/students", ctrl.Student.GetAllStudents)
		protected.POST("/students", ctrl.Student.CreateStudent)

		protected.GET("/attendance_log", ctrl.Attendance.GetAllLogs)
		protected.POST("/attendance_log", ctrl.Attendance.CreateLog)
	}
}
