package handler

import (
	"net/http"
	"time"

	"Connect_Life/internal/model"
	"Connect_Life/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

type EventCreateReq struct {
	ChatID      uint64    `json:"chat"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"startsAt"`
	VenueID     uint64    `json:"venue"`
	Sport       string    `json:"sport"`
}

func eventView(e *model.Event) gin.H {
	v := gin.H{
		"id":          e.ID,
		"name":        e.Name,
		"description": e.Description,
		"startsAt":    e.StartsAt,
		"sport":       e.Sport,
	}
	if e.Chat != nil {
		v["chat"] = gin.H{"id": e.Chat.ID, "name": e.Chat.Name, "groupImage": e.Chat.GroupImage}
	}
	if e.Venue != nil {
		v["venue"] = gin.H{"id": e.Venue.ID, "name": e.Venue.Name, "address": e.Venue.Address}
	}
	return v
}

func (h *EventHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req EventCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	event, err := h.svc.Create(id, service.EventCreate{
		ChatID:      req.ChatID,
		Name:        req.Name,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		VenueID:     req.VenueID,
		Sport:       req.Sport,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, eventView(event))
}

// List 活动列表；?futura=true 只看未开始的
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.svc.List(c.Query("futura") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(events))
	for i := range events {
		out = append(out, eventView(&events[i]))
	}
	c.JSON(http.StatusOK, out)
}
