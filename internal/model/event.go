package model

import "time"

// Event 社区活动。不变量：每个社区同一时刻最多只有一个活动
type Event struct {
	ID          uint64 `gorm:"primaryKey"`
	ChatID      uint64 `gorm:"not null;index"`
	Name        string `gorm:"size:64;not null"`
	Description string `gorm:"type:text"`
	StartsAt    time.Time `gorm:"not null;index"`
	VenueID     uint64 `gorm:"not null;index"`
	Sport       string `gorm:"size:32;default:'Outro'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Chat  *Chat  `gorm:"foreignKey:ChatID"`
	Venue *Venue `gorm:"foreignKey:VenueID"`
}
