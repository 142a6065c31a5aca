package controller

import (
	"strconv"

	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary 获取用户列表（分页）
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "按邮箱过滤"
// @Param limit query int false "每页数量，默认10"
// @Param page_offset query int false "起始偏移，默认0"
// @Success 200 {object} util.Response
// @Router /api/users/ [get]
func (ctl *UserController) List(c *gin.Context) {
	p, ok := paginationParams(c)
	if !ok {
		return
	}

	users, meta, err := ctl.Service.List(c.Query("search"), p)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"users": users, "pagination": meta}, "Fetched users successfully.")
}

// @Summary 获取用户详情
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/ [get]
func (ctl *UserController) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := ctl.Service.Get(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"user": user}, "Fetched user successfully.")
}

// @Summary 更新本人资料
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UpdateProfileRequest true "资料字段"
// @Success 200 {object} util.Response
// @Router /api/users/profile/update/ [put]
func (ctl *UserController) UpdateProfile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"user": user}, "Profile updated successfully.")
}

// @Summary 管理员更新用户（含角色标志）
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param body body service.UpdateUserRequest true "资料与角色标志"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/update/ [put]
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.Update(id, req)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"user": user}, "User updated successfully.")
}

// @Summary 删除用户（连同其认证令牌）
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/delete/ [delete]
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := ctl.Service.Delete(id)
	if err != nil {
		util.HandleError(c, err)
		return
	}

	util.Success(c, gin.H{"user": user}, "User deleted successfully.")
}

func userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid user id")
		return 0, false
	}
	return uint(id), true
}
