package controllers

import (
	"errors"
	"strconv"

	"github.com/elsonbaty123/wagbty-sub000/pkg/resp"
	"github.com/elsonbaty123/wagbty-sub000/services"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Svc    *services.DeliveryService
	Orders *services.OrderService
}

func NewDeliveryController(svc *services.DeliveryService, orders *services.OrderService) *DeliveryController {
	return &DeliveryController{Svc: svc, Orders: orders}
}

// GET /delivery/orders/available
func (dc *DeliveryController) Available(c *gin.Context) {
	rows, err := dc.Svc.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /delivery/orders/:id/accept
func (dc *DeliveryController) Accept(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := dc.Svc.Accept(uid, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrOrderTaken):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"accepted": true})
}

// GET /delivery/work
func (dc *DeliveryController) CurrentWork(c *gin.Context) {
	orders, err := dc.Svc.CurrentWork(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /delivery/histories
func (dc *DeliveryController) Histories(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := dc.Svc.History(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /delivery/orders/:id/status
func (dc *DeliveryController) UpdateStatus(c *gin.Context) {
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

	if err := dc.Orders.UpdateStatusForDelivery(uid, uint(id), req.Status); err != nil {
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

// POST /delivery/orders/:id/not-delivered
func (dc *DeliveryController) MarkNotDelivered(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req services.NotDeliveredReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := dc.Orders.MarkNotDelivered(uid, uint(id), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidReason),
			errors.Is(err, services.ErrInvalidBlame):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": "not_delivered"})
}

// GET /delivery/profile
func (dc *DeliveryController) Profile(c *gin.Context) {
	p, err := dc.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "delivery profile not found")
		return
	}
	resp.OK(c, p)
}

// PUT /delivery/profile
func (dc *DeliveryController) UpsertProfile(c *gin.Context) {
	var req services.DeliveryProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := dc.Svc.UpsertProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
