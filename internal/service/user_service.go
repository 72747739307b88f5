package service

import (
	"errors"
	"fmt"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/policy"
	"Connect_Life/internal/repository/mysql"
	"Connect_Life/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo  *mysql.UserRepository
	codes *redis.CodeRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo:  &mysql.UserRepository{DB: db},
		codes: &redis.CodeRepository{},
	}
}

func (s *UserService) Register(name, email, password, role string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", pkg.ErrValidation)
	}

	taken, err := s.repo.EmailTaken(email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("email already registered: %w", pkg.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 除非显式要求 admin，一律按普通成员建号
	if role != model.RoleAdmin {
		role = model.RoleMember
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		Active:   true,
		Pfp:      model.DefaultPfp,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验凭据并签发 12 小时 access token
func (s *UserService) Login(email, password string) (string, *model.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("user not found: %w", pkg.ErrInvalidCredentials)
	}
	if !user.Active {
		return "", nil, fmt.Errorf("account is inactive: %w", pkg.ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, fmt.Errorf("wrong password: %w", pkg.ErrInvalidCredentials)
	}

	token, err := pkg.IssueAccess(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) Get(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user not found: %w", pkg.ErrNotFound)
	}
	return user, err
}

// UpdateMe 自助编辑只开放昵称和头像，角色与激活状态碰不到
func (s *UserService) UpdateMe(id uint64, name, pfp string) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if pfp != "" {
		user.Pfp = pfp
	}
	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]model.User, error) {
	return s.repo.List()
}

type AdminUserUpdate struct {
	Name     string
	Email    string
	Role     string
	Pfp      string
	Active   *bool
	ResetPfp bool
}

// AdminUpdate 管理员编辑他人账号；编辑自己必须走自助通道
func (s *UserService) AdminUpdate(caller policy.Identity, targetID uint64, upd AdminUserUpdate) (*model.User, error) {
	if !policy.CanAdminManageUser(caller, targetID) {
		return nil, fmt.Errorf("you cannot manage your own account through this route: %w", pkg.ErrForbidden)
	}

	user, err := s.Get(targetID)
	if err != nil {
		return nil, err
	}

	if upd.Email != "" && upd.Email != user.Email {
		taken, err := s.repo.EmailTaken(upd.Email, targetID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("email already in use: %w", pkg.ErrConflict)
		}
		user.Email = upd.Email
	}
	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Role != "" {
		if upd.Role != model.RoleAdmin && upd.Role != model.RoleMember {
			return nil, fmt.Errorf("unknown role %q: %w", upd.Role, pkg.ErrValidation)
		}
		user.Role = upd.Role
	}
	if upd.Active != nil {
		user.Active = *upd.Active
	}
	switch {
	case upd.Pfp != "":
		user.Pfp = upd.Pfp
	case upd.ResetPfp:
		user.Pfp = model.DefaultPfp
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) AdminDelete(caller policy.Identity, targetID uint64) error {
	if !policy.CanAdminManageUser(caller, targetID) {
		return fmt.Errorf("you cannot delete your own account: %w", pkg.ErrForbidden)
	}
	deleted, err := s.repo.DeleteByID(targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("user not found: %w", pkg.ErrNotFound)
	}
	return nil
}

// ResetPassword 消费邮件验证码后重置密码
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", pkg.ErrValidation)
	}

	ok, err := s.codes.ConsumeResetCode(email, code)
	if err != nil || !ok {
		return fmt.Errorf("code verification failed: %w", pkg.ErrInvalidCredentials)
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("user not found: %w", pkg.ErrNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}
