package controllers

import (
	"github.com/gin-gonic/gin"

	"quizgen/internal/models/response_models"
	mem "quizgen/pkg/memcache"
	"quizgen/pkg/utils"
)

type SessionController struct {
	session mem.SessionStore
}

func NewSessionController(session mem.SessionStore) *SessionController {
	return &SessionController{session: session}
}

func (sc *SessionController) GetSessionHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.SessionResponse{
		Items:      sc.session.Items(),
		HasResults: sc.session.HasResults(),
	}, "")
}

func (sc *SessionController) ResetSessionHandler(c *gin.Context) {
	sc.session.Reset()
	utils.RespondSuccess(c, nil, "Session cleared")
}
