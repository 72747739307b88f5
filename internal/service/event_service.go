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

type EventService struct {
	repo     *mysql.EventRepository
	chats    *mysql.ChatRepository
	venues   *mysql.VenueRepository
	producer *pkg.KafkaProducer
}

func NewEventService(db *gorm.DB, producer *pkg.KafkaProducer) *EventService {
	return &EventService{
		repo:     &mysql.EventRepository{DB: db},
		chats:    &mysql.ChatRepository{DB: db},
		venues:   &mysql.VenueRepository{DB: db},
		producer: producer,
	}
}

type EventCreate struct {
	ChatID      uint64
	Name        string
	Description string
	StartsAt    time.Time
	VenueID     uint64
	Sport       string
}

// Create 只有社区创建者能排活动；新活动原子替换旧活动，
// 保证每个社区任何时刻至多一个活动
func (s *EventService) Create(caller policy.Identity, in EventCreate) (*model.Event, error) {
	if in.ChatID == 0 || in.Name == "" || in.StartsAt.IsZero() || in.VenueID == 0 {
		return nil, fmt.Errorf("chat, name, date and venue are required: %w", pkg.ErrValidation)
	}

	chat, err := s.chats.FindByID(in.ChatID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("community not found: %w", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !policy.CanCreateEvent(caller, chat) {
		return nil, fmt.Errorf("only the community creator can schedule its event: %w", pkg.ErrForbidden)
	}

	if _, err := s.venues.FindByID(in.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue not found: %w", pkg.ErrNotFound)
		}
		return nil, err
	}

	event := &model.Event{
		ChatID:      in.ChatID,
		Name:        in.Name,
		Description: in.Description,
		StartsAt:    in.StartsAt,
		VenueID:     in.VenueID,
	}
	if in.Sport != "" {
		event.Sport = in.Sport
	}

	if err := s.repo.Replace(event); err != nil {
		return nil, err
	}

	if err := s.producer.SendActivity(context.Background(), pkg.ActivityEvent{
		Type: pkg.EventEventScheduled, ChatID: in.ChatID, ActorID: caller.ID, At: time.Now(),
	}); err != nil {
		log.Printf("activity event send failed: %v", err)
	}

	return s.repo.FindByID(event.ID)
}

func (s *EventService) List(futureOnly bool) ([]model.Event, error) {
	return s.repo.List(futureOnly)
}
