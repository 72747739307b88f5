package service

import (
	"errors"
	"testing"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
)

func TestMessagesRequireMembership(t *testing.T) {
	db := newTestDB(t)
	messages := NewMessageService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)
	outsider := seedUser(t, db, "bia", model.RoleMember)

	chat, err := chats.Create(owner, ChatCreate{Name: "Basquete"})
	if err != nil {
		t.Fatal(err)
	}

	// 非成员发消息和读记录都被拒，带社区 id 也没用
	if _, err := messages.Post(outsider, chat.ID, "oi"); !errors.Is(err, pkg.ErrForbidden) {
		t.Errorf("outsider post err = %v, want ErrForbidden", err)
	}
	if _, err := messages.List(outsider, chat.ID); !errors.Is(err, pkg.ErrForbidden) {
		t.Errorf("outsider list err = %v, want ErrForbidden", err)
	}

	if _, err := messages.Post(owner, chat.ID, "bem-vindos"); err != nil {
		t.Fatalf("member post: %v", err)
	}
	list, err := messages.List(owner, chat.ID)
	if err != nil {
		t.Fatalf("member list: %v", err)
	}
	if len(list) != 1 || list[0].Content != "bem-vindos" || list[0].SenderID != owner.ID {
		t.Fatalf("messages = %+v", list)
	}
}

func TestMessagePostValidations(t *testing.T) {
	db := newTestDB(t)
	messages := NewMessageService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)

	chat, err := chats.Create(owner, ChatCreate{Name: "Chat"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := messages.Post(owner, chat.ID, ""); !errors.Is(err, pkg.ErrValidation) {
		t.Errorf("empty content err = %v, want ErrValidation", err)
	}
	if _, err := messages.Post(owner, 9999, "oi"); !errors.Is(err, pkg.ErrNotFound) {
		t.Errorf("missing chat err = %v, want ErrNotFound", err)
	}
}

func TestMessagesKeepChronologicalOrder(t *testing.T) {
	db := newTestDB(t)
	messages := NewMessageService(db, nil)
	chats := NewChatService(db, nil)
	owner := seedUser(t, db, "ana", model.RoleMember)

	chat, err := chats.Create(owner, ChatCreate{Name: "Ordem"})
	if err != nil {
		t.Fatal(err)
	}

	for _, content := range []string{"um", "dois", "três"} {
		if _, err := messages.Post(owner, chat.ID, content); err != nil {
			t.Fatal(err)
		}
	}

	list, err := messages.List(owner, chat.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"um", "dois", "três"}
	if len(list) != len(want) {
		t.Fatalf("len = %d, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i].Content != want[i] {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Content, want[i])
		}
	}
}
