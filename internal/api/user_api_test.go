package api

import (
	"net/http"
	"strings"
	"testing"

	"rental_listing/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestRegisterUser(t *testing.T) {
	app, db := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/user/create/", gin.H{
		"email":    "test@example.com",
		"password": "testing123",
		"name":     "Sample User",
	}, "")

	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", res.Code, res.Body.String())
	}
	if strings.Contains(res.Body.String(), "password") {
		t.Fatal("response must never include the password field")
	}

	var user domain.User
	if err := db.Where("email = ?", "test@example.com").First(&user).Error; err != nil {
		t.Fatalf("expected user to be persisted: %v", err)
	}
	if !user.CheckPassword("testing123") {
		t.Fatal("persisted password hash does not match")
	}
}

func TestRegisterUserWithIncompletePayload(t *testing.T) {
	app, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/user/create/", gin.H{
		"email": "test@example.com",
	}, "")

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestRegisterUserWithShortPassword(t *testing.T) {
	app, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/user/create/", gin.H{
		"email":    "test@example.com",
		"password": "pw",
	}, "")

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a password under 5 characters, got %d", res.Code)
	}
}

func TestRegisterUserWithDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	payload := gin.H{"email": "test@example.com", "password": "testing123"}
	if res := doJSON(t, app, http.MethodPost, "/user/create/", payload, ""); res.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", res.Code)
	}
	if res := doJSON(t, app, http.MethodPost, "/user/create/", payload, ""); res.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: expected 400, got %d", res.Code)
	}
}

func TestLoginSucceeds(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerAndLogin(t, app, "test@example.com", "testing123")
	if token == "" {
		t.Fatal("expected a token")
	}
}

func TestLoginFailsGenerically(t *testing.T) {
	app, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/user/create/", gin.H{
		"email":    "test@example.com",
		"password": "testing123",
	}, "")
	if res.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", res.Code)
	}

	// Wrong password, unknown user and malformed payload all answer 400
	// with the same generic message.
	wrongPassword := doJSON(t, app, http.MethodPost, "/user/login/", gin.H{
		"email":    "test@example.com",
		"password": "wrongpass",
	}, "")
	unknownUser := doJSON(t, app, http.MethodPost, "/user/login/", gin.H{
		"email":    "ghost@example.com",
		"password": "testing123",
	}, "")
	malformed := doJSON(t, app, http.MethodPost, "/user/login/", gin.H{
		"email": "test@example.com",
	}, "")

	for _, res := range []int{wrongPassword.Code, unknownUser.Code, malformed.Code} {
		if res != http.StatusBadRequest {
			t.Fatalf("expected 400 on login failure, got %d", res)
		}
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Fatal("login failures must not reveal which field was wrong")
	}
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodGet, "/user/me/", nil, "")
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", res.Code)
	}
}

func TestMeReturnsOwnProfile(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "test@example.com", "testing123")

	res := doJSON(t, app, http.MethodGet, "/user/me/", nil, token)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", res.Code, res.Body.String())
	}

	var profile UserResponse
	decodeBody(t, res, &profile)
	if profile.Email != "test@example.com" {
		t.Fatalf("expected own email, got %q", profile.Email)
	}
	if strings.Contains(res.Body.String(), "password") {
		t.Fatal("profile response must never include the password field")
	}
}

func TestMeRejectsPost(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "test@example.com", "testing123")

	res := doJSON(t, app, http.MethodPost, "/user/me/", gin.H{"email": "test@example.com"}, token)
	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST on /user/me/, got %d", res.Code)
	}
}

func TestMePartialUpdate(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "test@example.com", "testing123")

	res := doJSON(t, app, http.MethodPatch, "/user/me/", gin.H{
		"name":     "Gift",
		"password": "newsecret",
	}, token)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", res.Code, res.Body.String())
	}

	res = doJSON(t, app, http.MethodGet, "/user/me/", nil, token)
	var profile UserResponse
	decodeBody(t, res, &profile)
	if profile.Name != "Gift" {
		t.Fatalf("expected updated name, got %q", profile.Name)
	}

	// The new password works, the old one does not
	res = doJSON(t, app, http.MethodPost, "/user/login/", gin.H{
		"email":    "test@example.com",
		"password": "newsecret",
	}, "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected login with new password to succeed, got %d", res.Code)
	}
	res = doJSON(t, app, http.MethodPost, "/user/login/", gin.H{
		"email":    "test@example.com",
		"password": "testing123",
	}, "")
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected login with old password to fail, got %d", res.Code)
	}
}
