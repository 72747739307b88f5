package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func chatView(chat *model.Chat) gin.H {
	return gin.H{
		"id":          chat.ID,
		"isGroup":     chat.IsGroup,
		"name":        chat.Name,
		"description": chat.Description,
		"creator":     chat.CreatorID,
		"groupImage":  chat.GroupImage,
		"open":        chat.Open,
		"sport":       chat.Sport,
		"meetupDays":  chat.MeetupDayList(),
		"meetupTime":  chat.MeetupTime,
	}
}

func chatIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid chat id"})
		return 0, false
	}
	return id, true
}

// Create 建社区：multipart，文本字段 name/description/sport/members，
// members 是 JSON 数组字符串；文件字段 groupImage
func (h *ChatHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var memberIDs []uint64
	if raw := c.PostForm("members"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &memberIDs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid members list"})
			return
		}
	}

	imagePath, err := pkg.SaveImage(c, "groupImage")
	if err != nil {
		fail(c, err)
		return
	}

	chat, err := h.svc.Create(id, service.ChatCreate{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Sport:       c.PostForm("sport"),
		Image:       imagePath,
		MemberIDs:   memberIDs,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, chatView(chat))
}

// ListMine 调用方参与的所有会话
func (h *ChatHandler) ListMine(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	chats, err := h.svc.ListMine(id.ID)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(chats))
	for i := range chats {
		out = append(out, chatView(&chats[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListAllAdmin 管理员视角的全部社区，带成员数
func (h *ChatHandler) ListAllAdmin(c *gin.Context) {
	list, err := h.svc.ListGroupsAdmin()
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for i := range list {
		v := chatView(&list[i].Chat)
		v["numMembers"] = list[i].NumMembers
		out = append(out, v)
	}
	c.JSON(http.StatusOK, out)
}

// ListOpen 开放社区列表，?sport= 做大小写无关过滤
func (h *ChatHandler) ListOpen(c *gin.Context) {
	list, err := h.svc.ListOpen(c.Query("sport"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for i := range list {
		v := chatView(&list[i].Chat)
		v["numMembers"] = list[i].NumMembers
		out = append(out, v)
	}
	c.JSON(http.StatusOK, out)
}

func (h *ChatHandler) Join(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	already, err := h.svc.Join(id, chatID)
	if err != nil {
		fail(c, err)
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"msg": "you are already a member of this community"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "joined the community successfully", "chatId": chatID})
}

// Update 群配置编辑：multipart，省略的字段保持原值
func (h *ChatHandler) Update(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	imagePath, err := pkg.SaveImage(c, "groupImage")
	if err != nil {
		fail(c, err)
		return
	}

	upd := service.ChatUpdate{Image: imagePath}
	if v, ok := c.GetPostForm("name"); ok {
		upd.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		upd.Description = &v
	}
	if v, ok := c.GetPostForm("sport"); ok {
		upd.Sport = &v
	}
	if v, ok := c.GetPostForm("open"); ok {
		open := v == "true"
		upd.Open = &open
	}
	if v, ok := c.GetPostForm("meetupTime"); ok {
		upd.MeetupTime = &v
	}
	if raw, ok := c.GetPostForm("meetupDays"); ok {
		var days []string
		if err := json.Unmarshal([]byte(raw), &days); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid meetup days list"})
			return
		}
		upd.MeetupDays = days
	}
	if raw, ok := c.GetPostForm("members"); ok {
		var memberIDs []uint64
		if err := json.Unmarshal([]byte(raw), &memberIDs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid members list"})
			return
		}
		upd.MemberIDs = memberIDs
	}

	chat, err := h.svc.Update(id, chatID, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "community settings updated", "chat": chatView(chat)})
}

func (h *ChatHandler) Delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	chatID, ok := chatIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id, chatID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "community deleted"})
}
