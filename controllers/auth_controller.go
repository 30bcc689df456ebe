package controllers

import (
	"errors"

	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"
	"github.com/Avi1top/carvango-backend-sub000/services"
	"github.com/Avi1top/carvango-backend-sub000/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /auth/request-code
func (ac *AuthController) RequestCode(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Service.RequestCode(req.Email); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "code sent"})
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cust, err := ac.Service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadVerifyCode) || errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cust)
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, cust, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "customer": cust})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	cust, err := ac.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "customer not found")
		return
	}
	resp.OK(c, cust)
}

// PATCH /auth/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req services.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cust, err := ac.Service.UpdateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cust)
}
