package controllers

import (
	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"
	"github.com/Akhilus26/firebased-quickbite/utils"

	"github.com/gin-gonic/gin"
)

type WalletController struct {
	Service *services.WalletService
}

func NewWalletController(s *services.WalletService) *WalletController {
	return &WalletController{Service: s}
}

// GET /wallet
func (wc *WalletController) Balance(c *gin.Context) {
	w, err := wc.Service.Balance(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"balance": w.Balance})
}

type TopUpReq struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// POST /wallet/topup. Simulated: no gateway behind it.
func (wc *WalletController) TopUp(c *gin.Context) {
	var req TopUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	w, err := wc.Service.TopUp(utils.CurrentUserID(c), req.Amount)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"balance": w.Balance})
}
