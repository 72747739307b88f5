package mysql

import (
	"Connect_Life/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func (r *MessageRepository) Append(msg *model.Message) error {
	return r.DB.Create(msg).Error
}

// ListByChat 按时间顺序返回整段聊天记录
func (r *MessageRepository) ListByChat(chatID uint64) ([]model.Message, error) {
	var list []model.Message
	err := r.DB.Where("chat_id = ?", chatID).
		Order("created_at, id").
		Find(&list).Error
	return list, err
}
