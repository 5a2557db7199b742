package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/controllers"
	"github.com/yigit/studentforce/internal/middleware"
)

// Controllers groups every handler mounted by SetupRouter
type Controllers struct {
	Students    *controllers.StudentController
	Courses     *controllers.CourseController
	Professors  *controllers.ProfessorController
	Enrollments *controllers.EnrollmentController
	Marks       *controllers.MarkController
	Assignments *controllers.AssignmentController
	Reports     *controllers.ReportController
	Settings    *controllers.SettingsController
	Health      *controllers.HealthController
	Feed        gin.HandlerFunc
}

// SetupRouter configures all application routes. uploadLimit caps the body
// of import requests.
func SetupRouter(router *gin.Engine, c Controllers, uploadLimit int64) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.GetHealth)
	if c.Feed != nil {
		v1.GET("/ws", c.Feed)
	}

	students := v1.Group("/students")
	{
		students.GET("", c.Students.GetAllStudents)
		students.GET("/:id", c.Students.GetStudentByID)
		students.GET("/:id/summary", c.Students.GetStudentSummary)
		students.POST("", c.Students.CreateStudent)
		students.PATCH("/:id", c.Students.UpdateStudent)
		students.DELETE("/:id", c.Students.DeleteStudent)
		students.POST("/import", middleware.BodyLimit(uploadLimit), c.Settings.ImportStudents)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Courses.GetAllCourses)
		courses.GET("/:id", c.Courses.GetCourseByID)
		courses.GET("/:id/summary", c.Courses.GetCourseSummary)
		courses.POST("", c.Courses.CreateCourse)
		courses.PATCH("/:id", c.Courses.UpdateCourse)
		courses.DELETE("/:id", c.Courses.DeleteCourse)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", c.Professors.GetAllProfessors)
		professors.GET("/:id", c.Professors.GetProfessorByID)
		professors.GET("/:id/summary", c.Professors.GetProfessorSummary)
		professors.POST("", c.Professors.CreateProfessor)
		professors.PATCH("/:id", c.Professors.UpdateProfessor)
		professors.DELETE("/:id", c.Professors.DeleteProfessor)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", c.Enrollments.GetAllEnrollments)
		enrollments.GET("/:id", c.Enrollments.GetEnrollmentByID)
		enrollments.POST("", c.Enrollments.CreateEnrollment)
		enrollments.PATCH("/:id", c.Enrollments.UpdateEnrollment)
		enrollments.DELETE("/:id", c.Enrollments.DeleteEnrollment)
	}

	marks := v1.Group("/marks")
	{
		marks.GET("", c.Marks.GetAllMarks)
		marks.GET("/:id", c.Marks.GetMarkByID)
		marks.POST("", c.Marks.CreateMark)
		marks.PATCH("/:id", c.Marks.UpdateMark)
		marks.DELETE("/:id", c.Marks.DeleteMark)
	}

	assignments := v1.Group("/assignments")
	{
		assignments.GET("", c.Assignments.GetAllAssignments)
		assignments.GET("/:id", c.Assignments.GetAssignmentByID)
		assignments.POST("", c.Assignments.CreateAssignment)
		assignments.PATCH("/:id", c.Assignments.UpdateAssignment)
		assignments.DELETE("/:id", c.Assignments.DeleteAssignment)
	}

	// Dashboard and reports
	v1.GET("/dashboard", c.Reports.GetDashboard)
	v1.GET("/reports", c.Reports.GetReport)
	v1.GET("/reports/semesters", c.Reports.GetSemesters)

	// Current user
	v1.GET("/me", c.Settings.GetCurrentUser)
	v1.PATCH("/me", c.Settings.UpdateCurrentUser)

	settings := v1.Group("/settings")
	{
		settings.GET("/export", c.Settings.ExportSnapshot)
		settings.GET("/export.xlsx", c.Settings.ExportWorkbook)
		settings.POST("/import", middleware.BodyLimit(uploadLimit), c.Settings.ImportSnapshot)
		settings.POST("/reset", c.Settings.ResetData)
		settings.POST("/clear", c.Settings.ClearData)
	}
}
