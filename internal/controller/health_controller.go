package controller

import (
	"net/http"

	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 检查服务与数据库状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (ctl *HealthController) HealthCheck(c *gin.Context) {
	// 检查数据库连接
	sqlDB, err := ctl.DB.DB()
	if err != nil {
		util.InternalServerError(c)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Fail(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	util.Success(c, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	}, "Service healthy.")
}
