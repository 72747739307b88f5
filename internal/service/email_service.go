package service

import (
	"errors"
	"fmt"

	"Connect_Life/internal/pkg"
	"Connect_Life/internal/repository/mysql"
	"Connect_Life/internal/repository/redis"

	"gorm.io/gorm"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	codes    *redis.CodeRepository
	users    *mysql.UserRepository
}

func NewEmailService(db *gorm.DB, cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{
		emailCfg: cfg,
		codes:    &redis.CodeRepository{},
		users:    &mysql.UserRepository{DB: db},
	}
}

// SendResetCode 发送密码重置验证码。
// 邮箱不存在时静默返回成功，避免被用来探测已注册账号
func (s *EmailService) SendResetCode(email string) error {
	if _, err := s.users.FindByEmail(email); err != nil {
		return nil
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	if err := s.codes.SaveResetCode(email, code); err != nil {
		if errors.Is(err, redis.ErrCodeCooldown) {
			return fmt.Errorf("a reset code was sent recently, wait before retrying: %w", pkg.ErrConflict)
		}
		return err
	}

	html := pkg.ResetCodeHTML(code, redis.ResetCodeTTL)
	return pkg.SendEmail(s.emailCfg, email, "Connect Life - redefinição de senha", html)
}
