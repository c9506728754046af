package controllers

import (
	"strconv"

	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"
	"github.com/Akhilus26/firebased-quickbite/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Tokens *services.TokenService
}

func NewOrderController(orders *services.OrderService, tokens *services.TokenService) *OrderController {
	return &OrderController{Orders: orders, Tokens: tokens}
}

// POST /orders. Checkout: cart lines in, assembled order out.
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders. The caller's order history, newest first.
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id. Only the order's owner may read it.
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}

	order, err := oc.Orders.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/tokens. Scratch tokens for one of the caller's orders.
func (oc *OrderController) TokensForOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}

	// Ownership check rides on the order lookup.
	if _, err := oc.Orders.DetailForUser(utils.CurrentUserID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}

	tokens, err := oc.Tokens.ListByOrder(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tokens})
}
