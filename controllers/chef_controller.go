package controllers

import (
	"errors"
	"strconv"

	"github.com/elsonbaty123/wagbty-sub000/pkg/resp"
	"github.com/elsonbaty123/wagbty-sub000/services"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ChefController struct {
	Svc    *services.ChefService
	Orders *services.OrderService
}

func NewChefController(svc *services.ChefService, orders *services.OrderService) *ChefController {
	return &ChefController{Svc: svc, Orders: orders}
}

// GET /chef/profile
func (cc *ChefController) Profile(c *gin.Context) {
	p, err := cc.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrChefProfileNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /chef/profile
func (cc *ChefController) UpdateProfile(c *gin.Context) {
	var req services.ChefProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := cc.Svc.UpdateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrChefProfileNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

type SetAvailabilityReq struct {
	Status string `json:"status" binding:"required,oneof=available busy closed"`
}

// PATCH /chef/availability
func (cc *ChefController) SetAvailability(c *gin.Context) {
	var req SetAvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Svc.SetAvailability(utils.CurrentUserID(c), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrChefProfileNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidAvailability):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// GET /chef/orders?status=&page=&limit=
func (cc *ChefController) ListOrders(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := cc.Orders.ListForChef(uid, status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /chef/orders/:id
func (cc *ChefController) OrderDetail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := cc.Orders.DetailForChef(uid, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /chef/orders/:id/status
func (cc *ChefController) UpdateOrderStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Orders.UpdateStatusForChef(uid, uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
