package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/app/services"
	"github.com/yigit/studentforce/internal/middleware"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService *services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetAllProfessors lists professors
// @Summary List professors
// @Tags professors
// @Produce json
// @Param q query string false "Case-insensitive search on name, email, department or specialization"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]models.Professor}}
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors := c.professorService.List(ctx.Query("q"))
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Items: professors, Total: len(professors)}))
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.Professor}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	professor, err := c.professorService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor))
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(professor))
}

// UpdateProfessor applies a partial update
// @Summary Update a professor
// @Tags professors
// @Accept json
// @Produce json
// @Param id path string true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Professor}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [patch]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	var req dto.UpdateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.Update(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor))
}

// DeleteProfessor deletes a professor with their assignments and marks
// @Summary Delete a professor
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	if err := c.professorService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Professor deleted successfully"}))
}

// GetProfessorSummary returns a professor's assignments and the marks they gave
// @Summary Professor summary
// @Tags professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=reports.ProfessorSummary}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{id}/summary [get]
func (c *ProfessorController) GetProfessorSummary(ctx *gin.Context) {
	summary, err := c.professorService.Summary(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
