package controllers

import (
	"errors"
	"strconv"

	"github.com/elsonbaty123/wagbty-sub000/pkg/resp"
	"github.com/elsonbaty123/wagbty-sub000/services"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// GET /chef/coupons
func (cc *CouponController) List(c *gin.Context) {
	coupons, err := cc.Svc.ListForChef(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// POST /chef/coupons
func (cc *CouponController) Create(c *gin.Context) {
	var req services.CouponIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	coupon, err := cc.Svc.CreateForChef(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrCouponCodeTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, coupon)
}

// PUT /chef/coupons/:id
func (cc *CouponController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid coupon id")
		return
	}

	var req services.CouponIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	coupon, err := cc.Svc.UpdateForChef(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrCouponCodeTaken):
			resp.Conflict(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.OK(c, coupon)
}

// DELETE /chef/coupons/:id
func (cc *CouponController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid coupon id")
		return
	}

	if err := cc.Svc.DeleteForChef(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
