package mysql

import (
	"strings"

	"Connect_Life/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

// Create 建群并在同一事务里把创建者写进成员表
func (r *ChatRepository) Create(chat *model.Chat, extraMemberIDs []uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		mRepo := &ChatMemberRepository{DB: tx}

		if err := tx.Create(chat).Error; err != nil {
			return err
		}

		if err := mRepo.Join(&model.ChatMember{ChatID: chat.ID, UserID: chat.CreatorID}); err != nil {
			return err
		}
		for _, uid := range extraMemberIDs {
			if uid == chat.CreatorID {
				continue
			}
			if err := mRepo.Join(&model.ChatMember{ChatID: chat.ID, UserID: uid}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ChatRepository) FindByID(id uint64) (*model.Chat, error) {
	var chat model.Chat
	err := r.DB.First(&chat, id).Error
	return &chat, err
}

// ListByMember 调用方所在的全部会话
func (r *ChatRepository) ListByMember(userID uint64) ([]model.Chat, error) {
	var list []model.Chat
	err := r.DB.
		Joins("JOIN chat_members cm ON cm.chat_id = chats.id").
		Where("cm.user_id = ?", userID).
		Order("chats.updated_at desc").
		Find(&list).Error
	return list, err
}

// ListGroups 管理员视角的全部社区
func (r *ChatRepository) ListGroups() ([]model.Chat, error) {
	var list []model.Chat
	err := r.DB.Where("is_group = ?", true).Order("id desc").Find(&list).Error
	return list, err
}

// ListOpen 开放社区，sport 非空时做大小写无关的模糊过滤
func (r *ChatRepository) ListOpen(sport string) ([]model.Chat, error) {
	q := r.DB.Where("is_group = ? AND open = ?", true, true)
	if sport != "" {
		q = q.Where("LOWER(sport) LIKE ?", "%"+strings.ToLower(sport)+"%")
	}
	var list []model.Chat
	err := q.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *ChatRepository) Save(chat *model.Chat) error {
	return r.DB.Save(chat).Error
}

// DeleteByID 幂等硬删除，连同成员、消息和活动一起清掉
func (r *ChatRepository) DeleteByID(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_id = ?", id).Delete(&model.ChatMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_id = ?", id).Delete(&model.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Chat{}, id).Error
	})
}
