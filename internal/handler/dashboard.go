package handler

import (
	"sort"

	"github.com/Gabriel-Pasternak/ReqWise/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	reqService *service.RequirementService
}

func NewDashboardHandler(reqService *service.RequirementService) *DashboardHandler {
	return &DashboardHandler{reqService: reqService}
}

// GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	reqs, err := h.reqService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	total := len(reqs)
	byStatus := make(map[string]int)
	byPriority := make(map[string]int)
	for _, r := range reqs {
		byStatus[string(r.Status)]++
		byPriority[string(r.Priority)]++
	}

	// Recent activity: 10 most recently updated
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].UpdatedAt.After(reqs[j].UpdatedAt)
	})
	if len(reqs) > 10 {
		reqs = reqs[:10]
	}

	recent := make([]gin.H, 0, len(reqs))
	for i := range reqs {
		recent = append(recent, requirementBrief(&reqs[i]))
	}

	Success(c, gin.H{
		"total":           total,
		"by_status":       byStatus,
		"by_priority":     byPriority,
		"recent_activity": recent,
	})
}
