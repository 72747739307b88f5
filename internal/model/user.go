package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// DefaultPfp 新用户默认头像
const DefaultPfp = "/uploads/basic-default-pfp.jpg"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:16;not null;default:'member'"`
	Active    bool   `gorm:"not null;default:true"`
	Pfp       string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
