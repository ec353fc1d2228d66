package handler

import (
	"net/http"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
	"github.com/gin-gonic/gin"
)

// Response helpers

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

func Error(c *gin.Context, httpCode int, code int, message string) {
	c.JSON(httpCode, gin.H{
		"code":    code,
		"message": message,
		"data":    nil,
	})
}

func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, 50001, message)
}

// ValidationFailed reports field-scoped violations so the form layer
// can highlight each offending field.
func ValidationFailed(c *gin.Context, errs []model.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    40001,
		"message": "validation failed",
		"data":    gin.H{"errors": errs},
	})
}
