package controller

import (
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// paginationParams 解析 limit/page_offset 查询参数（兼容 offset 写法）。
// 非法窗口直接写出 400 并返回 false。
func paginationParams(c *gin.Context) (pagination.Params, bool) {
	offset := c.Query("page_offset")
	if offset == "" {
		offset = c.Query("offset")
	}

	p, err := pagination.Parse(c.Query("limit"), offset)
	if err != nil {
		util.BadRequest(c, err.Error())
		return pagination.Params{}, false
	}
	return p, true
}
