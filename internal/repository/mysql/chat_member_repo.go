package mysql

import (
	"Connect_Life/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatMemberRepository struct {
	DB *gorm.DB
}

// Join 幂等插入：(chat_id, user_id) 已存在则不报错也不重复
func (r *ChatMemberRepository) Join(member *model.ChatMember) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member).Error
}

func (r *ChatMemberRepository) IsMember(chatID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ChatMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ChatMemberRepository) MemberIDs(chatID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.ChatMember{}).
		Where("chat_id = ?", chatID).
		Order("id").
		Pluck("user_id", &ids).Error
	return ids, err
}

// ReplaceMembers 整表替换社区成员，创建者始终保留
func (r *ChatMemberRepository) ReplaceMembers(chatID, creatorID uint64, memberIDs []uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&model.ChatMember{}).Error; err != nil {
			return err
		}
		txRepo := &ChatMemberRepository{DB: tx}
		if err := txRepo.Join(&model.ChatMember{ChatID: chatID, UserID: creatorID}); err != nil {
			return err
		}
		for _, uid := range memberIDs {
			if uid == creatorID {
				continue
			}
			if err := txRepo.Join(&model.ChatMember{ChatID: chatID, UserID: uid}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ChatMemberRepository) CountByChat(chatID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ChatMember{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error
	return count, err
}
