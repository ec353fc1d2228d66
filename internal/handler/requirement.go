package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/Gabriel-Pasternak/ReqWise/internal/events"
	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
	"github.com/Gabriel-Pasternak/ReqWise/internal/notify"
	"github.com/Gabriel-Pasternak/ReqWise/internal/service"
	"github.com/Gabriel-Pasternak/ReqWise/internal/store"
	"github.com/gin-gonic/gin"
)

type RequirementHandler struct {
	reqService *service.RequirementService
	hub        *events.Hub
	notifier   notify.Notifier
}

func NewRequirementHandler(reqService *service.RequirementService, hub *events.Hub, notifier notify.Notifier) *RequirementHandler {
	return &RequirementHandler{reqService: reqService, hub: hub, notifier: notifier}
}

// POST /requirements
func (h *RequirementHandler) Create(c *gin.Context) {
	var in service.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	req, err := h.reqService.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(events.TypeRequirementCreated, requirementBrief(req))
	go h.notifier.NotifyRequirement(context.Background(), notify.NewRequirementEvent(events.TypeRequirementCreated, req, "Created requirement"))

	Success(c, req)
}

// GET /requirements
func (h *RequirementHandler) List(c *gin.Context) {
	status := c.Query("status")
	priority := c.Query("priority")
	keyword := c.Query("keyword")

	reqs, err := h.reqService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]model.Requirement, 0, len(reqs))
	for _, r := range reqs {
		if status != "" && string(r.Status) != status {
			continue
		}
		if priority != "" && string(r.Priority) != priority {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(keyword)) {
			continue
		}
		list = append(list, r)
	}

	Success(c, gin.H{"list": list, "total": len(list)})
}

// GET /requirements/:id
func (h *RequirementHandler) GetDetail(c *gin.Context) {
	req, err := h.reqService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	Success(c, req)
}

// PUT /requirements/:id
func (h *RequirementHandler) Update(c *gin.Context) {
	var in service.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	req, err := h.reqService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	changes := ""
	if len(req.Versions) > 0 {
		changes = req.Versions[len(req.Versions)-1].Changes
	}
	h.hub.Broadcast(events.TypeRequirementUpdated, requirementBrief(req))
	go h.notifier.NotifyRequirement(context.Background(), notify.NewRequirementEvent(events.TypeRequirementUpdated, req, changes))

	Success(c, req)
}

// DELETE /requirements/:id
func (h *RequirementHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	req, err := h.reqService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.reqService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	h.hub.Broadcast(events.TypeRequirementDeleted, requirementBrief(req))
	go h.notifier.NotifyRequirement(context.Background(), notify.NewRequirementEvent(events.TypeRequirementDeleted, req, "Deleted requirement"))

	Success(c, gin.H{"message": "requirement deleted", "id": id})
}

// GET /requirements/:id/versions
func (h *RequirementHandler) ListVersions(c *gin.Context) {
	req, err := h.reqService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	Success(c, gin.H{"id": req.ID, "versions": req.Versions})
}

// POST /tags/suggest
func (h *RequirementHandler) SuggestTags(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	suggested := h.reqService.SuggestTags(c.Request.Context(), body.Text)
	if suggested == nil {
		suggested = []string{}
	}
	Success(c, gin.H{"tags": suggested})
}

func (h *RequirementHandler) respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		ValidationFailed(c, verr.Fields)
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, 40404, "requirement does not exist")
	default:
		InternalError(c, err.Error())
	}
}

func requirementBrief(req *model.Requirement) gin.H {
	return gin.H{
		"id":        req.ID,
		"title":     req.Title,
		"status":    req.Status,
		"priority":  req.Priority,
		"owner":     req.Owner,
		"updatedAt": req.UpdatedAt,
	}
}
