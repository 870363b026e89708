package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartcampus/backend/internal/app/controllers"
	"github.com/smartcampus/backend/internal/app/models/dto"
	"github.com/smartcampus/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	institutionController *controllers.InstitutionController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	staffController *controllers.StaffController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	classroomController *controllers.ClassroomController,
	timetableController *controllers.TimetableController,
	attendanceController *controllers.AttendanceController,
	integrationController *controllers.IntegrationController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		institutions := authenticated.Group("/institutions")
		{
			institutions.POST("", institutionController.CreateInstitution)
			institutions.GET("/:id", institutionController.GetInstitution)
			institutions.PUT("/:id", institutionController.UpdateInstitution)
			institutions.POST("/:id/configure", institutionController.ConfigureInstitution)
			institutions.GET("/:id/stats", institutionController.GetStats)
			institutions.GET("/:id/activities", institutionController.ListActivities)

			// Scoped collection listings
			institutions.GET("/:id/faculties", facultyController.ListFaculties)
			institutions.GET("/:id/departments", departmentController.ListDepartments)
			institutions.GET("/:id/staff", staffController.ListStaff)
			institutions.GET("/:id/students", studentController.ListStudents)
			institutions.GET("/:id/courses", courseController.ListCourses)
			institutions.GET("/:id/classrooms", classroomController.ListClassrooms)
			institutions.GET("/:id/time-slots", timetableController.ListTimeSlots)
			institutions.GET("/:id/timetable", timetableController.ListTimetableSlots)
			institutions.GET("/:id/attendance", attendanceController.ListAttendanceRecords)
			institutions.GET("/:id/integrations", integrationController.ListIntegrations)
			institutions.GET("/:id/users", userController.ListUsers)
		}

		faculties := authenticated.Group("/faculties")
		{
			faculties.POST("", facultyController.CreateFaculty)
			faculties.GET("/:id", facultyController.GetFaculty)
			faculties.PUT("/:id", facultyController.UpdateFaculty)
			faculties.DELETE("/:id", facultyController.DeleteFaculty)
		}

		departments := authenticated.Group("/departments")
		{
			departments.POST("", departmentController.CreateDepartment)
			departments.GET("/:id", departmentController.GetDepartment)
			departments.PUT("/:id", departmentController.UpdateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}

		staff := authenticated.Group("/staff")
		{
			staff.POST("", staffController.CreateStaff)
			staff.GET("/:id", staffController.GetStaff)
			staff.PUT("/:id", staffController.UpdateStaff)
			staff.DELETE("/:id", staffController.DeleteStaff)
		}

		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		classrooms := authenticated.Group("/classrooms")
		{
			classrooms.POST("", classroomController.CreateClassroom)
			classrooms.GET("/:id", classroomController.GetClassroom)
			classrooms.PUT("/:id", classroomController.UpdateClassroom)
			classrooms.DELETE("/:id", classroomController.DeleteClassroom)
		}

		timeSlots := authenticated.Group("/time-slots")
		{
			timeSlots.POST("", timetableController.CreateTimeSlot)
			timeSlots.PUT("/:id", timetableController.UpdateTimeSlot)
			timeSlots.DELETE("/:id", timetableController.DeleteTimeSlot)
		}

		timetable := authenticated.Group("/timetable")
		{
			timetable.POST("", timetableController.CreateTimetableSlot)
			timetable.PUT("/:id", timetableController.UpdateTimetableSlot)
			timetable.DELETE("/:id", timetableController.DeleteTimetableSlot)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("", attendanceController.CreateAttendanceRecord)
			attendance.PUT("/:id", attendanceController.UpdateAttendanceRecord)
		}

		integrations := authenticated.Group("/integrations")
		{
			integrations.POST("", integrationController.CreateIntegration)
			integrations.PUT("/:id", integrationController.UpdateIntegration)
			integrations.DELETE("/:id", integrationController.DeleteIntegration)
		}

		users := authenticated.Group("/users")
		{
			users.PUT("/:id/role", userController.UpdateUserRole)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
