package handler

import (
	"net/http"
	"strconv"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// userView 响应里永远不带密码哈希
func userView(u *model.User) gin.H {
	return gin.H{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   u.Role,
		"active": u.Active,
		"pfp":    u.Pfp,
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	user, err := h.svc.Get(id.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(user))
}

// UpdateMe 自助编辑：multipart，文本字段 name，文件字段 pfp
func (h *UserHandler) UpdateMe(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	pfpPath, err := pkg.SaveImage(c, "pfp")
	if err != nil {
		fail(c, err)
		return
	}

	user, err := h.svc.UpdateMe(id.ID, c.PostForm("name"), pfpPath)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "profile updated", "user": userView(user)})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userView(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) AdminGet(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}
	user, err := h.svc.Get(targetID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(user))
}

// AdminUpdate 管理员编辑他人：multipart，可带 pfp 文件或 resetPfp=true
func (h *UserHandler) AdminUpdate(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}

	pfpPath, err := pkg.SaveImage(c, "pfp")
	if err != nil {
		fail(c, err)
		return
	}

	upd := service.AdminUserUpdate{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Role:     c.PostForm("role"),
		Pfp:      pfpPath,
		ResetPfp: c.PostForm("resetPfp") == "true",
	}
	if v, ok := c.GetPostForm("active"); ok {
		active := v == "true"
		upd.Active = &active
	}

	user, err := h.svc.AdminUpdate(id, targetID, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user updated", "user": userView(user)})
}

func (h *UserHandler) AdminDelete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}

	if err := h.svc.AdminDelete(id, targetID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}
