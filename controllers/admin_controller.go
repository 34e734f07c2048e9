package controllers

import (
	"errors"
	"strconv"

	"github.com/elsonbaty123/wagbty-sub000/pkg/resp"
	"github.com/elsonbaty123/wagbty-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{Svc: s}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	out, err := ac.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/accounts?role=&status=
func (ac *AdminController) Accounts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	users, err := ac.Svc.ListAccounts(c.Query("role"), c.Query("status"), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

func (ac *AdminController) Approve(c *gin.Context)   { ac.reviewAction(c, ac.Svc.Approve) }
func (ac *AdminController) Reject(c *gin.Context)    { ac.reviewAction(c, ac.Svc.Reject) }
func (ac *AdminController) Suspend(c *gin.Context)   { ac.reviewAction(c, ac.Svc.Suspend) }
func (ac *AdminController) Reinstate(c *gin.Context) { ac.reviewAction(c, ac.Svc.Reinstate) }

func (ac *AdminController) reviewAction(c *gin.Context, fn func(uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := fn(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNotReviewable):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"done": true})
}
