package controller

import (
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authSvc *service.AuthService, userSvc *service.UserService) *AuthController {
	return &AuthController{AuthService: authSvc, UserService: userSvc}
}

// @Summary 注册用户（同时签发唯一持久令牌）
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "注册信息"
// @Success 201 {object} util.Response
// @Router /api/users/register/ [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, token, err := ctl.AuthService.Register(req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Created(c, gin.H{
		"user":  service.NewUserResponse(user),
		"token": token,
	}, "Congrats! You are registered!")
}

// @Summary 登录，返回会话令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "登录凭证"
// @Success 200 {object} util.Response
// @Router /api/users/login/ [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, token, err := ctl.AuthService.Login(req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{
		"user":  service.NewUserResponse(user),
		"token": token,
	}, "Logged in successfully.")
}

// @Summary 当前用户资料
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/users/me/ [get]
func (ctl *AuthController) Profile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	user, err := ctl.UserService.Get(claims.UserID)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"user": user}, "Fetched profile successfully.")
}
