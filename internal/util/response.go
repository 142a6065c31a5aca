package util

import (
	"errors"
	"net/http"

	"question_bank_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 列表响应包装为 { data: { <entityPlural>: [...], pagination: {...} }, message }，
// 变更响应包装为 { data: { <entitySingular>: {...} }, message }，
// 失败响应包装为 { message, reason }。

// swagger:model
type Response struct {
	Data    gin.H  `json:"data"`
	Message string `json:"message"`
}

// swagger:model
type ErrorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

func Success(c *gin.Context, data gin.H, message string) {
	c.JSON(http.StatusOK, Response{Data: data, Message: message})
}

func Created(c *gin.Context, data gin.H, message string) {
	c.JSON(http.StatusCreated, Response{Data: data, Message: message})
}

func Fail(c *gin.Context, code int, reason string) {
	c.JSON(code, ErrorResponse{Message: "failure", Reason: reason})
}

func BadRequest(c *gin.Context, reason string) {
	Fail(c, http.StatusBadRequest, reason)
}

func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "unauthorized")
}

func Forbidden(c *gin.Context) {
	Fail(c, http.StatusForbidden, "permission denied")
}

func NotFound(c *gin.Context, reason string) {
	Fail(c, http.StatusNotFound, reason)
}

func InternalServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "internal server error")
}

// HandleError 把存储层的类型化错误翻译为对应状态码。
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidCredentials):
		BadRequest(c, err.Error())
	case errors.Is(err, ErrUnauthorized):
		Unauthorized(c)
	case errors.Is(err, ErrForbidden):
		Forbidden(c)
	default:
		logger.Log.Error("Internal server error", zap.Error(err))
		InternalServerError(c)
	}
}
