package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/app/services"
	"github.com/yigit/studentforce/internal/middleware"
)

// AssignmentController handles teaching assignments
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// GetAllAssignments lists teaching assignments
// @Summary List teaching assignments
// @Tags assignments
// @Produce json
// @Param q query string false "Search on id, professor id or course id"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]models.TeachingAssignment}}
// @Router /assignments [get]
func (c *AssignmentController) GetAllAssignments(ctx *gin.Context) {
	assignments := c.assignmentService.List(ctx.Query("q"))
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Items: assignments, Total: len(assignments)}))
}

// GetAssignmentByID retrieves a teaching assignment by ID
// @Summary Get teaching assignment by ID
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.TeachingAssignment}
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignmentByID(ctx *gin.Context) {
	assignment, err := c.assignmentService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// CreateAssignment assigns a professor to a course
// @Summary Create a teaching assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.TeachingAssignment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// UpdateAssignment applies a partial update
// @Summary Update a teaching assignment
// @Description Set clearEndDate to make the assignment open-ended
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.TeachingAssignment}
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [patch]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Update(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// DeleteAssignment deletes a teaching assignment
// @Summary Delete a teaching assignment
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	if err := c.assignmentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Assignment deleted successfully"}))
}
