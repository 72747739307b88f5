package model

import "time"

// Venue 体育场地（local），仅管理员维护，无更新接口
type Venue struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:64;not null"`
	Address   string `gorm:"size:255;not null"`
	Image     string `gorm:"size:255"`
	CreatedBy uint64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
