package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"response": 1,
		"message":  message,
	})
}

// DataResponse 带数据的成功响应
func DataResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"response": 1,
		"data":     data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// FieldErrorsResponse 字段级校验错误响应
func FieldErrorsResponse(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// LogicErrorResponse 将logic层错误映射为HTTP状态码
// 未识别的存储层错误按源系统行为返回带原始信息的400
func LogicErrorResponse(c *gin.Context, err error) {
	if logic.IsNotFound(err) {
		ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	ErrorResponse(c, http.StatusBadRequest, err.Error())
}
