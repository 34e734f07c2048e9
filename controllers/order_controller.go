package controllers

import (
	"errors"
	"strconv"

	"github.com/elsonbaty123/wagbty-sub000/pkg/resp"
	"github.com/elsonbaty123/wagbty-sub000/services"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc     *services.OrderService
	Coupons *services.CouponService
}

func NewOrderController(svc *services.OrderService, coupons *services.CouponService) *OrderController {
	return &OrderController{Svc: svc, Coupons: coupons}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Create(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDishNotFound),
			errors.Is(err, services.ErrChefNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrDishUnavailable),
			errors.Is(err, services.ErrChefClosed),
			errors.Is(err, services.ErrCouponInvalid),
			errors.Is(err, services.ErrCouponInactive),
			errors.Is(err, services.ErrCouponExpired),
			errors.Is(err, services.ErrCouponLimitReached),
			errors.Is(err, services.ErrCouponNotApplicable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

type ValidateCouponReq struct {
	ChefID   uint   `json:"chefId" binding:"required"`
	Code     string `json:"code" binding:"required"`
	DishID   uint   `json:"dishId" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

// POST /orders/validate-coupon
//
// Checkout probe: always 200 with {discount, error} so the client can
// show the result inline. Validation never consumes the coupon.
func (oc *OrderController) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	discount, err := oc.Coupons.Validate(req.ChefID, req.Code, req.DishID, req.Subtotal)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponInvalid),
			errors.Is(err, services.ErrCouponInactive),
			errors.Is(err, services.ErrCouponExpired),
			errors.Is(err, services.ErrCouponLimitReached),
			errors.Is(err, services.ErrCouponNotApplicable):
			resp.OK(c, gin.H{"discount": 0, "error": err.Error()})
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"discount": discount})
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Svc.ListForCustomer(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := oc.Svc.DetailForCustomer(uid, uint(id))
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

type AddReviewReq struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// POST /orders/:id/review
func (oc *OrderController) AddReview(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req AddReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Svc.AddReview(uid, uint(id), req.Rating, req.Review); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyReviewed):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrNotDeliveredYet),
			errors.Is(err, services.ErrInvalidRating):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"reviewed": true})
}
