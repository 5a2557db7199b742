package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/app/services"
	"github.com/yigit/studentforce/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SettingsController handles the current user and whole-dataset operations
type SettingsController struct {
	settingsService *services.SettingsService
	logger          zerolog.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService, logger zerolog.Logger) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetCurrentUser returns the signed-in user
// @Summary Current user
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Router /me [get]
func (c *SettingsController) GetCurrentUser(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.settingsService.CurrentUser()))
}

// UpdateCurrentUser changes the signed-in user's name, email or avatar
// @Summary Update current user
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /me [patch]
func (c *SettingsController) UpdateCurrentUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.settingsService.UpdateCurrentUser(ctx.Request.Context(), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// ExportSnapshot downloads every record as a versioned JSON document
// @Summary Export data
// @Tags settings
// @Produce json
// @Success 200 {file} file "Snapshot document"
// @Router /settings/export [get]
func (c *SettingsController) ExportSnapshot(ctx *gin.Context) {
	document, err := c.settingsService.Export()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", attachment("json"))
	ctx.Data(http.StatusOK, "application/json", document)
}

// ExportWorkbook downloads every record as an xlsx workbook, one sheet per collection
// @Summary Export data as a workbook
// @Tags settings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Router /settings/export.xlsx [get]
func (c *SettingsController) ExportWorkbook(ctx *gin.Context) {
	workbook, err := c.settingsService.ExportWorkbook()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", attachment("xlsx"))
	ctx.Data(http.StatusOK, xlsxContentType, workbook)
}

// ImportSnapshot replaces every record with an exported document
// @Summary Import data
// @Description Legacy unversioned documents are upgraded; invalid documents change nothing
// @Tags settings
// @Accept json
// @Produce json
// @Param document body object true "Exported snapshot document"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid document"
// @Failure 413 {object} dto.ErrorResponse "Document too large"
// @Router /settings/import [post]
func (c *SettingsController) ImportSnapshot(ctx *gin.Context) {
	document, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		if middleware.RespondTooLarge(ctx, err) {
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Failed to read request body").WithDetails(err.Error()),
		))
		return
	}

	if err := c.settingsService.Import(ctx.Request.Context(), document); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int("bytes", len(document)).Msg("Snapshot imported")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Data imported successfully"}))
}

// ImportStudents adds the students listed in an uploaded workbook
// @Summary Import students from a workbook
// @Description Reads the "Students" sheet (or the first sheet). Invalid rows are reported and skipped.
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.APIResponse{data=services.ImportResult}
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable workbook"
// @Failure 413 {object} dto.ErrorResponse "Workbook too large"
// @Router /students/import [post]
func (c *SettingsController) ImportStudents(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		if middleware.RespondTooLarge(ctx, err) {
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, "A workbook file is required").WithField("file"),
		))
		return
	}
	defer file.Close()

	workbook, err := io.ReadAll(file)
	if err != nil {
		if middleware.RespondTooLarge(ctx, err) {
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.settingsService.ImportStudents(ctx.Request.Context(), workbook, header.Filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("filename", header.Filename).
		Int("imported", len(result.Imported)).
		Int("rejected", len(result.Rejected)).
		Msg("Student workbook imported")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// ResetData restores the default dataset
// @Summary Reset data
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /settings/reset [post]
func (c *SettingsController) ResetData(ctx *gin.Context) {
	if err := c.settingsService.Reset(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Data reset to defaults"}))
}

// ClearData removes every record except the current user
// @Summary Clear data
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /settings/clear [post]
func (c *SettingsController) ClearData(ctx *gin.Context) {
	if err := c.settingsService.Clear(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "All data cleared"}))
}

func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="studentforce-%s.%s"`, time.Now().Format("2006-01-02"), ext)
}
