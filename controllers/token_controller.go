package controllers

import (
	"strconv"

	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"
	"github.com/Akhilus26/firebased-quickbite/utils"

	"github.com/gin-gonic/gin"
)

type TokenController struct {
	Service *services.TokenService
}

func NewTokenController(s *services.TokenService) *TokenController {
	return &TokenController{Service: s}
}

// POST /tokens/:id/reveal. The single backend mutation of the scratch
// flow: stamps used + revealedAt on first reveal.
func (tc *TokenController) Reveal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad token id")
		return
	}

	token, err := tc.Service.Reveal(uint(id), utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, token)
}
