package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ResetCodeTTL      = 5 * time.Minute
	ResetCodeCooldown = 60 * time.Second

	resetCodePrefix     = "code:reset"
	resetCooldownPrefix = "code:reset:cooldown"
)

var (
	ErrCodeNotFound   = errors.New("code not found or expired")
	ErrCodeSaveFailed = errors.New("code save failed")
	ErrCodeCooldown   = errors.New("code recently sent, wait before retrying")
)

// CodeRepository 密码重置验证码：带 TTL，一次性消费，限制重发频率
type CodeRepository struct{}

// SaveResetCode 写入验证码并标记冷却；冷却期内拒绝重发
func (r *CodeRepository) SaveResetCode(email, code string) error {
	ctx := context.Background()

	cooldownKey := fmt.Sprintf("%s:%s", resetCooldownPrefix, email)
	ok, err := Client.SetNX(ctx, cooldownKey, 1, ResetCodeCooldown).Result()
	if err != nil {
		return ErrCodeSaveFailed
	}
	if !ok {
		return ErrCodeCooldown
	}

	key := fmt.Sprintf("%s:%s", resetCodePrefix, email)
	if err := Client.Set(ctx, key, code, ResetCodeTTL).Err(); err != nil {
		return ErrCodeSaveFailed
	}
	return nil
}

// ConsumeResetCode 校验并删除，验证码只能用一次。
// lua 脚本保证取值和删除原子执行
func (r *CodeRepository) ConsumeResetCode(email, code string) (bool, error) {
	key := fmt.Sprintf("%s:%s", resetCodePrefix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return -1
end
if val ~= ARGV[1] then
  return 0
end
redis.call("DEL", KEYS[1])
return 1
`
	res, err := Client.Eval(context.Background(), script, []string{key}, code).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	switch res {
	case 1:
		return true, nil
	case -1:
		return false, ErrCodeNotFound
	default:
		return false, nil
	}
}
