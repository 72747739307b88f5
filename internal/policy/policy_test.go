package policy

import (
	"testing"

	"Connect_Life/internal/model"
)

var (
	owner   = Identity{ID: 1, Role: model.RoleMember}
	someone = Identity{ID: 2, Role: model.RoleMember}
	admin   = Identity{ID: 3, Role: model.RoleAdmin}
)

func group(open bool) *model.Chat {
	return &model.Chat{ID: 10, IsGroup: true, CreatorID: owner.ID, Open: open}
}

func TestCanConfigureChat(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		chat *model.Chat
		want bool
	}{
		{"owner can configure", owner, group(false), true},
		{"non-owner cannot configure", someone, group(true), false},
		{"admin is not owner", admin, group(true), false},
		{"private chat rejects everyone", owner, &model.Chat{IsGroup: false, CreatorID: owner.ID}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanConfigureChat(tt.id, tt.chat); got != tt.want {
				t.Errorf("CanConfigureChat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanDeleteChat(t *testing.T) {
	if CanDeleteChat(owner, group(true)) {
		t.Error("owner without admin role must not delete")
	}
	if !CanDeleteChat(admin, group(false)) {
		t.Error("admin must be able to delete a group")
	}
	if CanDeleteChat(admin, &model.Chat{IsGroup: false}) {
		t.Error("private chats are not deletable through the community route")
	}
}

func TestCanJoinChat(t *testing.T) {
	if CanJoinChat(group(false)) {
		t.Error("closed group must reject joins regardless of caller")
	}
	if !CanJoinChat(group(true)) {
		t.Error("open group must accept joins")
	}
	if CanJoinChat(&model.Chat{IsGroup: false, Open: true}) {
		t.Error("private chat is never joinable")
	}
}

func TestCanCreateEvent(t *testing.T) {
	if !CanCreateEvent(owner, group(false)) {
		t.Error("community creator must be able to schedule an event")
	}
	if CanCreateEvent(someone, group(true)) {
		t.Error("non-creator must not schedule events")
	}
	if CanCreateEvent(admin, group(true)) {
		t.Error("admin role alone does not grant event creation")
	}
}

func TestCanManageVenues(t *testing.T) {
	if CanManageVenues(owner) || CanManageVenues(someone) {
		t.Error("venue management is admin only")
	}
	if !CanManageVenues(admin) {
		t.Error("admin must manage venues")
	}
}

func TestCanAdminManageUser(t *testing.T) {
	if !CanAdminManageUser(admin, someone.ID) {
		t.Error("admin must manage other accounts")
	}
	if CanAdminManageUser(admin, admin.ID) {
		t.Error("admin must not manage itself through the admin route")
	}
	if CanAdminManageUser(owner, someone.ID) {
		t.Error("member must not manage accounts")
	}
}

func TestMessagePredicatesRequireMembership(t *testing.T) {
	members := []uint64{owner.ID, someone.ID}
	if !CanPostMessage(someone, members) || !CanReadMessages(someone, members) {
		t.Error("member must post and read")
	}
	outsider := Identity{ID: 99, Role: model.RoleAdmin}
	if CanPostMessage(outsider, members) || CanReadMessages(outsider, members) {
		t.Error("non-member must not post or read, admin included")
	}
}
