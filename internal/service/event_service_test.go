package service

import (
	"errors"
	"testing"
	"time"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
)

func TestEventCreateKeepsSingleEventPerCommunity(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)
	venue := seedVenue(t, db, "Quadra Central")

	chat, err := chats.Create(owner, ChatCreate{Name: "Vôlei de Sábado", Sport: "Vôlei"})
	if err != nil {
		t.Fatal(err)
	}

	first, err := events.Create(owner, EventCreate{
		ChatID:   chat.ID,
		Name:     "Treino",
		StartsAt: time.Now().Add(24 * time.Hour),
		VenueID:  venue.ID,
	})
	if err != nil {
		t.Fatalf("first event: %v", err)
	}

	second, err := events.Create(owner, EventCreate{
		ChatID:   chat.ID,
		Name:     "Amistoso",
		StartsAt: time.Now().Add(48 * time.Hour),
		VenueID:  venue.ID,
	})
	if err != nil {
		t.Fatalf("second event: %v", err)
	}

	// 连续创建两次，库里只剩第二个
	var count int64
	db.Model(&model.Event{}).Where("chat_id = ?", chat.ID).Count(&count)
	if count != 1 {
		t.Fatalf("events for community = %d, want exactly 1", count)
	}
	var remaining model.Event
	if err := db.Where("chat_id = ?", chat.ID).First(&remaining).Error; err != nil {
		t.Fatal(err)
	}
	if remaining.ID != second.ID || remaining.Name != "Amistoso" {
		t.Errorf("remaining event = {%d %s}, want the second one", remaining.ID, remaining.Name)
	}
	_ = first
}

func TestEventCreateOnlyByCommunityCreator(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)
	other := seedUser(t, db, "bia", model.RoleMember)
	admin := seedUser(t, db, "root", model.RoleAdmin)
	venue := seedVenue(t, db, "Quadra Central")

	chat, err := chats.Create(owner, ChatCreate{Name: "Tênis", Sport: "Tênis"})
	if err != nil {
		t.Fatal(err)
	}

	in := EventCreate{ChatID: chat.ID, Name: "Torneio", StartsAt: time.Now().Add(time.Hour), VenueID: venue.ID}

	if _, err := events.Create(other, in); !errors.Is(err, pkg.ErrForbidden) {
		t.Errorf("non-creator err = %v, want ErrForbidden", err)
	}
	if _, err := events.Create(admin, in); !errors.Is(err, pkg.ErrForbidden) {
		t.Errorf("admin-but-not-creator err = %v, want ErrForbidden", err)
	}
	if _, err := events.Create(owner, in); err != nil {
		t.Fatalf("creator err = %v, want success", err)
	}
}

func TestEventCreateValidations(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)
	venue := seedVenue(t, db, "Quadra Central")

	chat, err := chats.Create(owner, ChatCreate{Name: "Corrida"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := events.Create(owner, EventCreate{ChatID: chat.ID}); !errors.Is(err, pkg.ErrValidation) {
		t.Errorf("missing fields err = %v, want ErrValidation", err)
	}
	if _, err := events.Create(owner, EventCreate{
		ChatID: 9999, Name: "x", StartsAt: time.Now(), VenueID: venue.ID,
	}); !errors.Is(err, pkg.ErrNotFound) {
		t.Errorf("missing chat err = %v, want ErrNotFound", err)
	}
	if _, err := events.Create(owner, EventCreate{
		ChatID: chat.ID, Name: "x", StartsAt: time.Now(), VenueID: 9999,
	}); !errors.Is(err, pkg.ErrNotFound) {
		t.Errorf("missing venue err = %v, want ErrNotFound", err)
	}
}

func TestEventListFutureFilter(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)
	venue := seedVenue(t, db, "Quadra Central")

	past, err := chats.Create(owner, ChatCreate{Name: "Passado"})
	if err != nil {
		t.Fatal(err)
	}
	future, err := chats.Create(owner, ChatCreate{Name: "Futuro"})
	if err != nil {
		t.Fatal(err)
	}

	// 过期活动直接入库，Create 只排未来的新活动
	if err := db.Create(&model.Event{
		ChatID: past.ID, Name: "Antigo", StartsAt: time.Now().Add(-24 * time.Hour), VenueID: venue.ID,
	}).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := events.Create(owner, EventCreate{
		ChatID: future.ID, Name: "Próximo", StartsAt: time.Now().Add(24 * time.Hour), VenueID: venue.ID,
	}); err != nil {
		t.Fatal(err)
	}

	all, err := events.List(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("all events = %d, want 2", len(all))
	}
	// 升序：旧的在前
	if all[0].Name != "Antigo" {
		t.Errorf("events must be ordered by start time ascending")
	}
	if all[1].Chat == nil || all[1].Venue == nil {
		t.Errorf("listing must preload chat and venue references")
	}

	futureOnly, err := events.List(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(futureOnly) != 1 || futureOnly[0].Name != "Próximo" {
		t.Fatalf("future list = %+v, want only the upcoming event", futureOnly)
	}
}
