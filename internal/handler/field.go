package handler

import (
	"github.com/Gabriel-Pasternak/ReqWise/internal/fields"
	"github.com/gin-gonic/gin"
)

type FieldHandler struct {
	registry *fields.Registry
}

func NewFieldHandler(registry *fields.Registry) *FieldHandler {
	return &FieldHandler{registry: registry}
}

// GET /custom-fields
func (h *FieldHandler) ListDefinitions(c *gin.Context) {
	Success(c, gin.H{"fields": h.registry.Definitions()})
}
