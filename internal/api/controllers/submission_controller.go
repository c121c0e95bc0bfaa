package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizgen/internal/models/request_models"
	"quizgen/internal/models/response_models"
	"quizgen/internal/services"
	"quizgen/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
	progress          services.ProgressTrackerInterface
}

func NewSubmissionController(
	submissionService services.SubmissionServiceInterface,
	progress services.ProgressTrackerInterface,
) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		progress:          progress,
	}
}

func (sc *SubmissionController) SubmitHandler(c *gin.Context) {
	var req request_models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid submission payload")
		return
	}
	if req.Mode != "" && req.Mode != request_models.ModeVideo {
		utils.RespondError(c, http.StatusBadRequest, "Unsupported submission mode")
		return
	}

	results, err := sc.submissionService.SubmitVideo(c.Request.Context(), req.Input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Quiz generated successfully")
}

func (sc *SubmissionController) SubmitFileHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrEmptyInput)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	results, err := sc.submissionService.SubmitPDF(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Quiz generated successfully")
}

func (sc *SubmissionController) RegenerateHandler(c *gin.Context) {
	var req request_models.RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid regenerate payload")
		return
	}

	questions, err := sc.submissionService.Regenerate(
		c.Request.Context(),
		req.Source,
		response_models.QuizOrigin(req.Origin),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Quiz regenerated successfully")
}

func (sc *SubmissionController) ProgressHandler(c *gin.Context) {
	utils.RespondSuccess(c, sc.progress.Snapshot(), "")
}
