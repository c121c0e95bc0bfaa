package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quizgen/internal/models/response_models"
	"quizgen/internal/repositories"
	"quizgen/pkg/utils"
)

type QuizController struct {
	quizRepo repositories.QuizRepositoryInterface
}

func NewQuizController(quizRepo repositories.QuizRepositoryInterface) *QuizController {
	return &QuizController{quizRepo: quizRepo}
}

func (qc *QuizController) ListQuizzesHandler(c *gin.Context) {
	quizzes, err := qc.quizRepo.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}
	utils.RespondSuccess(c, quizzes, "Fetched quizzes successfully")
}

func (qc *QuizController) DeleteQuizHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	// deleting an id that no longer exists is fine, the end state is the same
	if err := qc.quizRepo.DeleteByID(uint(id), c.Request.Context()); err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}
	utils.RespondSuccess(c, nil, "Quiz deleted")
}

func (qc *QuizController) ExportQuizHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	quiz, err := qc.quizRepo.GetByID(uint(id), c.Request.Context())
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

	filename := utils.SafeFileName(quiz.Source) + "_quiz.txt"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(utils.QuizToText(questions)))
}
