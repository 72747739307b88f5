package mysql

import (
	"time"

	"Connect_Life/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

// Replace 单事务内先清掉该社区的旧活动再写入新活动，
// 保证"每个社区至多一个活动"且删除和插入之间没有崩溃窗口
func (r *EventRepository) Replace(event *model.Event) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", event.ChatID).Delete(&model.Event{}).Error; err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.Preload("Chat").Preload("Venue").First(&event, id).Error
	return &event, err
}

// List 按开始时间升序；futureOnly 只保留尚未开始的活动
func (r *EventRepository) List(futureOnly bool) ([]model.Event, error) {
	q := r.DB.Preload("Chat").Preload("Venue")
	if futureOnly {
		q = q.Where("starts_at >= ?", time.Now())
	}
	var list []model.Event
	err := q.Order("starts_at").Find(&list).Error
	return list, err
}

func (r *EventRepository) CountByChat(chatID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Event{}).Where("chat_id = ?", chatID).Count(&count).Error
	return count, err
}
