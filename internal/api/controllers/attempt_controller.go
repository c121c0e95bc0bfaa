package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizgen/internal/models/request_models"
	"quizgen/internal/models/response_models"
	"quizgen/internal/repositories"
	"quizgen/internal/services"
	"quizgen/pkg/utils"
)

type AttemptController struct {
	attempts services.AttemptManagerInterface
	quizRepo repositories.QuizRepositoryInterface
}

func NewAttemptController(
	attempts services.AttemptManagerInterface,
	quizRepo repositories.QuizRepositoryInterface,
) *AttemptController {
	return &AttemptController{attempts: attempts, quizRepo: quizRepo}
}

func (ac *AttemptController) StartAttemptHandler(c *gin.Context) {
	var req request_models.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid attempt payload")
		return
	}

	quiz, err := ac.quizRepo.GetByID(req.QuizID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}
	if quiz == nil {
		utils.HandleServiceError(c, utils.ErrQuizNotFound)
		return
	}

	var questions []response_models.Question
	if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Stored quiz data is corrupted")
		return
	}

	attempt := ac.attempts.Start(questions)
	utils.RespondSuccess(c, response_models.AttemptResponse{
		AttemptID: attempt.ID,
		Questions: attempt.Questions,
	}, "Attempt started")
}

func (ac *AttemptController) SelectAnswerHandler(c *gin.Context) {
	var req request_models.SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid answer payload")
		return
	}

	if err := ac.attempts.SelectAnswer(c.Param("id"), req.Index, req.Value); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Answer recorded")
}

func (ac *AttemptController) SubmitAttemptHandler(c *gin.Context) {
	id := c.Param("id")

	score, err := ac.attempts.Submit(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	attempt, err := ac.attempts.Get(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AttemptResponse{
		AttemptID: attempt.ID,
		Questions: attempt.Questions,
		Submitted: true,
		Score:     score,
	}, "Attempt submitted")
}
