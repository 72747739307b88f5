package model

import (
	"strings"
	"time"
)

// DefaultGroupImage 社区默认图片
const DefaultGroupImage = "/uploads/default-group.jpg"

type Chat struct {
	ID          uint64 `gorm:"primaryKey"`
	IsGroup     bool   `gorm:"not null;default:true"`
	Name        string `gorm:"size:64;not null"`
	Description string `gorm:"type:text"`
	CreatorID   uint64 `gorm:"not null;index"`
	GroupImage  string `gorm:"size:255"`
	Open        bool   `gorm:"not null;default:false"` // 默认不开放加入
	Sport       string `gorm:"size:32;default:'Outro'"`
	MeetupDays  string `gorm:"size:128"` // 逗号分隔，如 "Segunda,Quarta"
	MeetupTime  string `gorm:"size:16"`  // 如 "19:30"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Chat) MeetupDayList() []string {
	if c.MeetupDays == "" {
		return []string{}
	}
	return strings.Split(c.MeetupDays, ",")
}

func (c *Chat) SetMeetupDays(days []string) {
	c.MeetupDays = strings.Join(days, ",")
}

type ChatMember struct {
	ID        uint64 `gorm:"primaryKey"`
	ChatID    uint64 `gorm:"not null;index;uniqueIndex:uk_chat_user"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_chat_user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message 只追加，不修改不删除
type Message struct {
	ID        uint64 `gorm:"primaryKey"`
	ChatID    uint64 `gorm:"not null;index:idx_chat_time,priority:1"`
	SenderID  uint64 `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_chat_time,priority:2"`
}
