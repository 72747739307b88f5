package handler

import (
	"net/http"

	"Connect_Life/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) List(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	messages, err := h.svc.List(id, chatID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(messages))
	for _, m := range messages {
		out = append(out, gin.H{
			"id":      m.ID,
			"sender":  m.SenderID,
			"content": m.Content,
			"sentAt":  m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

func (h *MessageHandler) Post(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.Post(id, chatID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "message sent",
		"message": gin.H{
			"id":      msg.ID,
			"sender":  msg.SenderID,
			"content": msg.Content,
			"sentAt":  msg.CreatedAt,
		},
	})
}
