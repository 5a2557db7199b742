package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/app/services"
	"github.com/yigit/studentforce/internal/middleware"
)

// MarkController handles marks
type MarkController struct {
	markService *services.MarkService
}

// NewMarkController creates a new MarkController
func NewMarkController(markService *services.MarkService) *MarkController {
	return &MarkController{
		markService: markService,
	}
}

// GetAllMarks lists marks
// @Summary List marks
// @Tags marks
// @Produce json
// @Param q query string false "Search on id, student, course, professor or academic year"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse{items=[]models.Mark}}
// @Router /marks [get]
func (c *MarkController) GetAllMarks(ctx *gin.Context) {
	marks := c.markService.List(ctx.Query("q"))
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Items: marks, Total: len(marks)}))
}

// GetMarkByID retrieves a mark by ID
// @Summary Get mark by ID
// @Tags marks
// @Produce json
// @Param id path string true "Mark ID"
// @Success 200 {object} dto.APIResponse{data=models.Mark}
// @Failure 404 {object} dto.ErrorResponse "Mark not found"
// @Router /marks/{id} [get]
func (c *MarkController) GetMarkByID(ctx *gin.Context) {
	mark, err := c.markService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mark))
}

// CreateMark records a mark
// @Summary Record a mark
// @Description The grade is derived from the marks. Semester and academic year default to the course's.
// @Description The student must be enrolled in the course and the professor assigned to it.
// @Tags marks
// @Accept json
// @Produce json
// @Param request body dto.CreateMarkRequest true "Mark information"
// @Success 201 {object} dto.APIResponse{data=models.Mark}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Mark already recorded"
// @Router /marks [post]
func (c *MarkController) CreateMark(ctx *gin.Context) {
	var req dto.CreateMarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mark, err := c.markService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(mark))
}

// UpdateMark applies a partial update and regrades
// @Summary Update a mark
// @Tags marks
// @Accept json
// @Produce json
// @Param id path string true "Mark ID"
// @Param request body dto.UpdateMarkRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Mark}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mark not found"
// @Router /marks/{id} [patch]
func (c *MarkController) UpdateMark(ctx *gin.Context) {
	var req dto.UpdateMarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mark, err := c.markService.Update(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mark))
}

// DeleteMark deletes a mark
// @Summary Delete a mark
// @Tags marks
// @Produce json
// @Param id path string true "Mark ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Mark not found"
// @Router /marks/{id} [delete]
func (c *MarkController) DeleteMark(ctx *gin.Context) {
	if err := c.markService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Mark deleted successfully"}))
}
