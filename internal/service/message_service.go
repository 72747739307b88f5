package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/policy"
	"Connect_Life/internal/repository/mysql"

	"gorm.io/gorm"
)

type MessageService struct {
	repo     *mysql.MessageRepository
	chats    *ChatService
	members  *mysql.ChatMemberRepository
	producer *pkg.KafkaProducer
}

func NewMessageService(db *gorm.DB, producer *pkg.KafkaProducer) *MessageService {
	return &MessageService{
		repo:     &mysql.MessageRepository{DB: db},
		chats:    NewChatService(db, producer),
		members:  &mysql.ChatMemberRepository{DB: db},
		producer: producer,
	}
}

// List 读聊天记录要求调用方是该社区成员
func (s *MessageService) List(caller policy.Identity, chatID uint64) ([]model.Message, error) {
	if err := s.requireMember(caller, chatID, policy.CanReadMessages); err != nil {
		return nil, err
	}
	return s.repo.ListByChat(chatID)
}

// Post 追加一条消息；消息只增不改不删
func (s *MessageService) Post(caller policy.Identity, chatID uint64, content string) (*model.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required: %w", pkg.ErrValidation)
	}
	if err := s.requireMember(caller, chatID, policy.CanPostMessage); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ChatID:   chatID,
		SenderID: caller.ID,
		Content:  content,
	}
	if err := s.repo.Append(msg); err != nil {
		return nil, err
	}

	if err := s.producer.SendActivity(context.Background(), pkg.ActivityEvent{
		Type: pkg.EventMessagePosted, ChatID: chatID, ActorID: caller.ID, At: time.Now(),
	}); err != nil {
		log.Printf("activity event send failed: %v", err)
	}
	return msg, nil
}

func (s *MessageService) requireMember(caller policy.Identity, chatID uint64, allowed func(policy.Identity, []uint64) bool) error {
	if _, err := s.chats.Get(chatID); err != nil {
		return err
	}
	memberIDs, err := s.members.MemberIDs(chatID)
	if err != nil {
		return err
	}
	if !allowed(caller, memberIDs) {
		return fmt.Errorf("only community members can access its messages: %w", pkg.ErrForbidden)
	}
	return nil
}
