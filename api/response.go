package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误/提示响应结构，成功时直接返回实体 JSON
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NotModified 记录警告并返回 304 与诊断信息
// 用于业务规则拒绝（空参数、重复、不存在），属预期结果而非错误
func NotModified(c *gin.Context, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("警告: %s", message)
	c.JSON(http.StatusNotModified, Response{
		Code:    http.StatusNotModified,
		Message: message,
	})
}

// NotAcceptable 406 错误响应，用于请求体格式错误等边界故障
func NotAcceptable(c *gin.Context, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("错误: %s", message)
	c.JSON(http.StatusNotAcceptable, Response{
		Code:    http.StatusNotAcceptable,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// InternalError 500 错误响应，用于存储层等基础设施故障
func InternalError(c *gin.Context, message string) {
	log.Printf("错误: %s", message)
	c.JSON(http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
