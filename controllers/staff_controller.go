package controllers

import (
	"strconv"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"

	"github.com/gin-gonic/gin"
)

// StaffController is the counter-device surface: live orders, code lookup,
// status moves and per-item hand-over.
type StaffController struct {
	Orders *services.OrderService
}

func NewStaffController(orders *services.OrderService) *StaffController {
	return &StaffController{Orders: orders}
}

// GET /staff/orders/active
func (sc *StaffController) Active(c *gin.Context) {
	orders, err := sc.Orders.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /staff/orders/completed
func (sc *StaffController) Completed(c *gin.Context) {
	orders, err := sc.Orders.ListCompleted()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /staff/orders/code/:code. A completed order's code never resolves.
func (sc *StaffController) ByCode(c *gin.Context) {
	order, err := sc.Orders.GetByCode(c.Param("code"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if order == nil {
		resp.NotFound(c, "no active order with that code")
		return
	}
	resp.OK(c, order)
}

// GET /staff/orders/pending-count
func (sc *StaffController) PendingCount(c *gin.Context) {
	count, err := sc.Orders.PendingCount()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /staff/orders/:id/status
func (sc *StaffController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := sc.Orders.UpdateStatus(uint(id), entity.OrderStatus(req.Status)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id), "status": req.Status})
}

// PATCH /staff/orders/:id/items/:itemId/delivered
func (sc *StaffController) MarkDelivered(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad item id")
		return
	}

	ok, err := sc.Orders.MarkItemDelivered(uint(orderID), uint(itemID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	// ok == false means the order was already completed: no mutation.
	resp.OK(c, gin.H{"delivered": ok})
}
