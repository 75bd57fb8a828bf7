package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// User routes
	users := router.Group("/users")
	{
		users.GET("", authMiddleware.BasicAuth(false), userController.ListUsers)
		users.POST("", userController.CreateUser)
		users.GET("/:id", userController.GetUserByID)
	}

	// Course routes - mutations require an authenticated owner
	courses := router.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		coursesProtected := courses.Group("")
		coursesProtected.Use(authMiddleware.BasicAuth(true))
		{
			coursesProtected.POST("", courseController.CreateCourse)
			coursesProtected.PUT("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
		}
	}
}
