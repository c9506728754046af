package controllers

import (
	"strconv"

	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.GetMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /owner/menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Add(&in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /owner/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad menu item id")
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Update(uint(id), &in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

type AvailabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /owner/menu/:id/availability
func (mc *MenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad menu item id")
		return
	}
	var req AvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Service.SetAvailability(uint(id), *req.Available); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id), "available": *req.Available})
}

// DELETE /owner/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad menu item id")
		return
	}
	if err := mc.Service.Delete(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": uint(id)})
}
