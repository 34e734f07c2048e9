package controllers

import (
	"errors"
	"strconv"

	"github.com/elsonbaty123/wagbty-sub000/pkg/resp"
	"github.com/elsonbaty123/wagbty-sub000/services"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"github.com/gin-gonic/gin"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(s *services.DishService) *DishController { return &DishController{Svc: s} }

// GET /chefs/:id/dishes (public storefront)
func (dc *DishController) ListForChef(c *gin.Context) {
	chefID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid chef id")
		return
	}
	dishes, err := dc.Svc.ListForStorefront(uint(chefID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/:id
func (dc *DishController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	d, err := dc.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /dishes/:id/ratings
func (dc *DishController) Ratings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	ratings, err := dc.Svc.Ratings(uint(id), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ratings)
}

// ---- chef-gated ----

// GET /chef/dishes
func (dc *DishController) ListMine(c *gin.Context) {
	dishes, err := dc.Svc.ListForChef(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// POST /chef/dishes
func (dc *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := dc.Svc.CreateForChef(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /chef/dishes/:id
func (dc *DishController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := dc.Svc.UpdateForChef(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}
