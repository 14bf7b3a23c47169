package domain

import (
	"errors"
	"testing"
)

func TestCreateUserDefaults(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, "test@example.com", "testing123", "Sample User")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("expected email test@example.com, got %q", user.Email)
	}
	if !user.IsActive {
		t.Fatal("expected new user to be active")
	}
	if user.IsStaff || user.IsSuperuser {
		t.Fatal("expected new user to carry no staff rights")
	}
	if user.String() != user.Email {
		t.Fatalf("expected string representation to be the email, got %q", user.String())
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, "test@example.com", "testing123", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Password == "testing123" {
		t.Fatal("password stored in cleartext")
	}
	if !user.CheckPassword("testing123") {
		t.Fatal("stored hash does not match the original password")
	}
	if user.CheckPassword("wrongpass") {
		t.Fatal("wrong password accepted")
	}
}

func TestCreateUserRequiresEmail(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateUser(db, "", "testing123", ""); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateUser(db, "test@example.com", "testing123", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := CreateUser(db, "test@example.com", "othersecret", ""); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The first user is unaffected
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestCreateSuperuser(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateSuperuser(db, "admin@example.com", "testing123")
	if err != nil {
		t.Fatalf("create superuser: %v", err)
	}
	if !user.IsActive || !user.IsStaff || !user.IsSuperuser {
		t.Fatalf("expected active staff superuser, got active=%v staff=%v super=%v",
			user.IsActive, user.IsStaff, user.IsSuperuser)
	}
}

func TestEmailNormalization(t *testing.T) {
	db := newTestDB(t)

	testCases := []struct {
		input    string
		expected string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.com", "test4@example.com"},
	}
	for _, tc := range testCases {
		user, err := CreateUser(db, tc.input, "testing123", "")
		if err != nil {
			t.Fatalf("create user %q: %v", tc.input, err)
		}
		if user.Email != tc.expected {
			t.Fatalf("expected %q normalized to %q, got %q", tc.input, tc.expected, user.Email)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateUser(db, "test@example.com", "testing123", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := Authenticate(db, "test@example.com", "testing123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("unexpected user %q", user.Email)
	}

	// Wrong password and unknown email fail with the same generic error
	if _, err := Authenticate(db, "test@example.com", "wrongpass"); !errors.Is(err, ErrUnableToAuthenticate) {
		t.Fatalf("expected ErrUnableToAuthenticate for wrong password, got %v", err)
	}
	if _, err := Authenticate(db, "ghost@example.com", "testing123"); !errors.Is(err, ErrUnableToAuthenticate) {
		t.Fatalf("expected ErrUnableToAuthenticate for unknown email, got %v", err)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateUser(db, "test@example.com", "testing123", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate user: %v", err)
	}

	if _, err := Authenticate(db, "test@example.com", "testing123"); !errors.Is(err, ErrUnableToAuthenticate) {
		t.Fatalf("expected ErrUnableToAuthenticate for inactive user, got %v", err)
	}
}
