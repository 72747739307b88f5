package service

import (
	"errors"
	"testing"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
)

func TestVenueWritesAreAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewVenueService(db)
	member := seedUser(t, db, "ana", model.RoleMember)
	admin := seedUser(t, db, "root", model.RoleAdmin)

	if _, err := svc.Create(member, "Arena Azul", "Av. B, 45", ""); !errors.Is(err, pkg.ErrForbidden) {
		t.Errorf("member create err = %v, want ErrForbidden", err)
	}

	venue, err := svc.Create(admin, "Arena Azul", "Av. B, 45", "/uploads/imagem-1.jpg")
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}

	if err := svc.Delete(member, venue.ID); !errors.Is(err, pkg.ErrForbidden) {
		t.Errorf("member delete err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(admin, venue.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.Delete(admin, venue.ID); !errors.Is(err, pkg.ErrNotFound) {
		t.Errorf("delete missing err = %v, want ErrNotFound", err)
	}
}

func TestVenueNameMustBeUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewVenueService(db)
	admin := seedUser(t, db, "root", model.RoleAdmin)

	if _, err := svc.Create(admin, "Ginásio", "Rua C, 9", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(admin, "Ginásio", "Outro endereço", ""); !errors.Is(err, pkg.ErrConflict) {
		t.Errorf("duplicate name err = %v, want ErrConflict", err)
	}
}

func TestVenueValidationAndListing(t *testing.T) {
	db := newTestDB(t)
	svc := NewVenueService(db)
	admin := seedUser(t, db, "root", model.RoleAdmin)

	if _, err := svc.Create(admin, "", "", ""); !errors.Is(err, pkg.ErrValidation) {
		t.Errorf("empty fields err = %v, want ErrValidation", err)
	}

	if _, err := svc.Create(admin, "Quadra B", "Rua 2", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(admin, "Quadra A", "Rua 1", ""); err != nil {
		t.Fatal(err)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "Quadra A" {
		t.Fatalf("list = %+v, want name-ordered venues", list)
	}
}
