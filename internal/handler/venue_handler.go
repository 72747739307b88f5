package handler

import (
	"net/http"
	"strconv"

	"Connect_Life/internal/pkg"
	"Connect_Life/internal/service"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	svc *service.VenueService
}

func NewVenueHandler(svc *service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// Create 建场地：multipart，文本字段 name/address，文件字段 imagem
func (h *VenueHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	imagePath, err := pkg.SaveImage(c, "imagem")
	if err != nil {
		fail(c, err)
		return
	}

	venue, err := h.svc.Create(id, c.PostForm("name"), c.PostForm("address"), imagePath)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      venue.ID,
		"name":    venue.Name,
		"address": venue.Address,
		"image":   venue.Image,
	})
}

func (h *VenueHandler) List(c *gin.Context) {
	venues, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(venues))
	for _, v := range venues {
		out = append(out, gin.H{
			"id":      v.ID,
			"name":    v.Name,
			"address": v.Address,
			"image":   v.Image,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	venueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid venue id"})
		return
	}

	if err := h.svc.Delete(id, venueID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "venue removed", "id": venueID})
}
