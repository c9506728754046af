package controllers

import (
	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"

	"github.com/gin-gonic/gin"
)

type OwnerController struct {
	Canteen *services.CanteenService
	Orders  *services.OrderService
}

func NewOwnerController(canteen *services.CanteenService, orders *services.OrderService) *OwnerController {
	return &OwnerController{Canteen: canteen, Orders: orders}
}

// GET /owner/stats
func (oc *OwnerController) Stats(c *gin.Context) {
	stats, err := oc.Canteen.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /owner/orders
func (oc *OwnerController) AllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /owner/canteen-status
func (oc *OwnerController) CanteenStatus(c *gin.Context) {
	s, err := oc.Canteen.Status()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"open": s.Open})
}

type CanteenStatusReq struct {
	Open *bool `json:"open" binding:"required"`
}

// PUT /owner/canteen-status
func (oc *OwnerController) SetCanteenStatus(c *gin.Context) {
	var req CanteenStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Canteen.SetOpen(*req.Open); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"open": *req.Open})
}
