package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/policy"
	"Connect_Life/internal/repository/mysql"

	"gorm.io/gorm"
)

type ChatService struct {
	repo     *mysql.ChatRepository
	members  *mysql.ChatMemberRepository
	producer *pkg.KafkaProducer
}

func NewChatService(db *gorm.DB, producer *pkg.KafkaProducer) *ChatService {
	return &ChatService{
		repo:     &mysql.ChatRepository{DB: db},
		members:  &mysql.ChatMemberRepository{DB: db},
		producer: producer,
	}
}

// ChatWithCount 列表展示用，附带成员数
type ChatWithCount struct {
	Chat       model.Chat
	NumMembers int64
}

type ChatCreate struct {
	Name        string
	Description string
	Sport       string
	Image       string
	MemberIDs   []uint64
}

// Create 建社区，创建者即群主并且始终是成员
func (s *ChatService) Create(caller policy.Identity, in ChatCreate) (*model.Chat, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("community name is required: %w", pkg.ErrValidation)
	}

	chat := &model.Chat{
		IsGroup:     true,
		Name:        in.Name,
		Description: in.Description,
		CreatorID:   caller.ID,
		Open:        false,
	}
	if in.Sport != "" {
		chat.Sport = in.Sport
	}
	if in.Image != "" {
		chat.GroupImage = in.Image
	} else {
		chat.GroupImage = model.DefaultGroupImage
	}

	if err := s.repo.Create(chat, in.MemberIDs); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) Get(id uint64) (*model.Chat, error) {
	chat, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("community not found: %w", pkg.ErrNotFound)
	}
	return chat, err
}

func (s *ChatService) ListMine(userID uint64) ([]model.Chat, error) {
	return s.repo.ListByMember(userID)
}

func (s *ChatService) ListGroupsAdmin() ([]ChatWithCount, error) {
	chats, err := s.repo.ListGroups()
	if err != nil {
		return nil, err
	}
	return s.withCounts(chats)
}

func (s *ChatService) ListOpen(sport string) ([]ChatWithCount, error) {
	chats, err := s.repo.ListOpen(sport)
	if err != nil {
		return nil, err
	}
	return s.withCounts(chats)
}

func (s *ChatService) withCounts(chats []model.Chat) ([]ChatWithCount, error) {
	out := make([]ChatWithCount, 0, len(chats))
	for _, chat := range chats {
		n, err := s.members.CountByChat(chat.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ChatWithCount{Chat: chat, NumMembers: n})
	}
	return out, nil
}

func (s *ChatService) MemberIDs(chatID uint64) ([]uint64, error) {
	return s.members.MemberIDs(chatID)
}

// Join 加入开放社区。重复加入按幂等处理：返回成功且成员表不变
func (s *ChatService) Join(caller policy.Identity, chatID uint64) (already bool, err error) {
	chat, err := s.Get(chatID)
	if err != nil {
		return false, err
	}
	if !policy.CanJoinChat(chat) {
		return false, fmt.Errorf("this community is not open for new members: %w", pkg.ErrForbidden)
	}

	isMember, err := s.members.IsMember(chatID, caller.ID)
	if err != nil {
		return false, err
	}
	if isMember {
		return true, nil
	}

	if err := s.members.Join(&model.ChatMember{ChatID: chatID, UserID: caller.ID}); err != nil {
		return false, err
	}

	s.emit(pkg.ActivityEvent{Type: pkg.EventMemberJoined, ChatID: chatID, ActorID: caller.ID, At: time.Now()})
	return false, nil
}

type ChatUpdate struct {
	Name        *string
	Description *string
	Sport       *string
	Open        *bool
	MeetupTime  *string
	MeetupDays  []string // nil 表示不变
	MemberIDs   []uint64 // nil 表示不变；替换成员表但创建者始终保留
	Image       string   // 空串表示不变
}

// Update 社区配置编辑，仅群主；私聊一律拒绝
func (s *ChatService) Update(caller policy.Identity, chatID uint64, upd ChatUpdate) (*model.Chat, error) {
	chat, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.IsGroup {
		return nil, fmt.Errorf("private chats have no editable settings: %w", pkg.ErrForbidden)
	}
	if !policy.CanConfigureChat(caller, chat) {
		return nil, fmt.Errorf("only the community creator can edit its settings: %w", pkg.ErrForbidden)
	}

	if upd.Name != nil {
		chat.Name = *upd.Name
	}
	if upd.Description != nil {
		chat.Description = *upd.Description
	}
	if upd.Sport != nil {
		chat.Sport = *upd.Sport
	}
	if upd.Open != nil {
		chat.Open = *upd.Open
	}
	if upd.MeetupTime != nil {
		chat.MeetupTime = *upd.MeetupTime
	}
	if upd.MeetupDays != nil {
		chat.SetMeetupDays(upd.MeetupDays)
	}
	if upd.Image != "" {
		chat.GroupImage = upd.Image
	}

	if err := s.repo.Save(chat); err != nil {
		return nil, err
	}
	if upd.MemberIDs != nil {
		if err := s.members.ReplaceMembers(chat.ID, chat.CreatorID, upd.MemberIDs); err != nil {
			return nil, err
		}
	}
	return chat, nil
}

// Delete 删除社区只开放给管理员，群主自己也不行
func (s *ChatService) Delete(caller policy.Identity, chatID uint64) error {
	chat, err := s.Get(chatID)
	if err != nil {
		return err
	}
	if !chat.IsGroup {
		return fmt.Errorf("only communities can be deleted through this route: %w", pkg.ErrForbidden)
	}
	if !policy.CanDeleteChat(caller, chat) {
		return fmt.Errorf("only admins can delete a community: %w", pkg.ErrForbidden)
	}
	return s.repo.DeleteByID(chatID)
}

// emit 尽力而为，失败只打日志，不影响请求结果
func (s *ChatService) emit(ev pkg.ActivityEvent) {
	if err := s.producer.SendActivity(context.Background(), ev); err != nil {
		log.Printf("activity event send failed: %v", err)
	}
}
