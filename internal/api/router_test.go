package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/profilehub/profile-service/internal/core/domain"
)

type memoryUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *memoryUserRepo) add(u domain.User) *domain.User {
	r.nextID++
	u.ID = r.nextID
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	r.users[u.ID] = &u
	return &u
}

func (r *memoryUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryUserRepo) FindByToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Token == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return r.add(*user), nil
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, id int64, name, bio, location string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Name, u.Bio, u.Location = name, bio, location
	clone := *u
	return &clone, nil
}

func (r *memoryUserRepo) SetProfessionalStatus(_ context.Context, id int64, professional bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.ProfessionalStatus = professional
	clone := *u
	return &clone, nil
}

type memoryNotificationRepo struct {
	created []domain.Notification
}

func (r *memoryNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	copy := *n
	copy.ID = int64(len(r.created) + 1)
	r.created = append(r.created, copy)
	return &copy, nil
}

func newTestRouter(users *memoryUserRepo, notifications *memoryNotificationRepo) http.Handler {
	return NewRouter(Dependencies{
		Users:         users,
		Notifications: notifications,
		UpgradeRoles:  []string{domain.RoleAdmin},
		Logger:        zerolog.Nop(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	decoded := make(map[string]any)
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not a JSON object: %q", rec.Body.String())
		}
	}
	return rec, decoded
}

func TestUpdateProfile_Success(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "John Doe", Bio: "Developer", Location: "NYC", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPut, "/api/users/profile", "valid_token",
		`{"name":"Jane Doe","bio":"Designer","location":"LA"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["name"] != "Jane Doe" || body["bio"] != "Designer" || body["location"] != "LA" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["professional_status"] != false {
		t.Fatalf("expected professional_status false, got %v", body["professional_status"])
	}
	if _, ok := body["token"]; ok {
		t.Fatalf("token leaked into response: %v", body)
	}

	stored, _ := users.FindByID(context.Background(), 1)
	if stored.Name != "Jane Doe" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestUpdateProfile_EmptyField(t *testing.T) {
	users := newMemoryUserRepo()
	actor := users.add(domain.User{Name: "John Doe", Bio: "Developer", Location: "NYC", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPut, "/api/users/profile", "valid_token",
		`{"name":"","bio":"Designer","location":"LA"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "All fields (name, bio, location) are required." {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	stored, _ := users.FindByID(context.Background(), actor.ID)
	if stored.Name != "John Doe" || stored.Bio != "Developer" || stored.Location != "NYC" {
		t.Fatalf("partial write on validation failure: %+v", stored)
	}
}

func TestUpdateProfile_MissingField(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "John Doe", Bio: "Developer", Location: "NYC", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPut, "/api/users/profile", "valid_token",
		`{"name":"Jane Doe","location":"LA"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("missing error field: %v", body)
	}
}

func TestUpdateProfile_InvalidToken(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "John Doe", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPut, "/api/users/profile", "invalid_token",
		`{"name":"Jane Doe","bio":"Designer","location":"LA"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "Invalid token" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	stored, _ := users.FindByID(context.Background(), 1)
	if stored.Name != "John Doe" {
		t.Fatalf("data changed on rejected request: %+v", stored)
	}
}

func TestUpdateProfile_NoAuthorizationHeader(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "John Doe", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPut, "/api/users/profile", "",
		`{"name":"Jane Doe","bio":"Designer","location":"LA"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "Unauthorized" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestUpgrade_AsAdmin(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "Admin", Role: domain.RoleAdmin, Token: "admin_token"})
	target := users.add(domain.User{Name: "Test User", Token: "user_token"})
	notifications := &memoryNotificationRepo{}
	h := newTestRouter(users, notifications)

	rec, body := doJSON(t, h, http.MethodPost, "/api/users/"+strconv.FormatInt(target.ID, 10)+"/upgrade", "admin_token", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["professional_status"] != true {
		t.Fatalf("expected professional_status true, got %v", body)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifications.created))
	}
	n := notifications.created[0]
	if n.UserID != target.ID || n.Message != "Your account has been upgraded to professional status." {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestUpgrade_AsRegularUser(t *testing.T) {
	users := newMemoryUserRepo()
	actor := users.add(domain.User{Name: "Test User", Role: domain.RoleUser, Token: "user_token"})
	notifications := &memoryNotificationRepo{}
	h := newTestRouter(users, notifications)

	rec, body := doJSON(t, h, http.MethodPost, "/api/users/"+strconv.FormatInt(actor.ID, 10)+"/upgrade", "user_token", "")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["error"] != "Forbidden" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	stored, _ := users.FindByID(context.Background(), actor.ID)
	if stored.ProfessionalStatus {
		t.Fatalf("status flipped by non-elevated actor")
	}
	if len(notifications.created) != 0 {
		t.Fatalf("notification created by non-elevated actor")
	}
}

func TestUpgrade_InvalidToken(t *testing.T) {
	users := newMemoryUserRepo()
	target := users.add(domain.User{Name: "Test User", Token: "user_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/users/"+strconv.FormatInt(target.ID, 10)+"/upgrade", "invalid_token", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "Invalid token" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestUpgrade_TargetNotFound(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "Admin", Role: domain.RoleAdmin, Token: "admin_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodPost, "/api/users/999/upgrade", "admin_token", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "User not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestUpgrade_Repeated(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "Admin", Role: domain.RoleAdmin, Token: "admin_token"})
	target := users.add(domain.User{Name: "Test User", Token: "user_token"})
	notifications := &memoryNotificationRepo{}
	h := newTestRouter(users, notifications)

	path := "/api/users/" + strconv.FormatInt(target.ID, 10) + "/upgrade"
	for i := 0; i < 2; i++ {
		rec, _ := doJSON(t, h, http.MethodPost, path, "admin_token", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("upgrade %d: expected 200, got %d", i+1, rec.Code)
		}
	}
	if len(notifications.created) != 2 {
		t.Fatalf("expected one notification per successful upgrade, got %d", len(notifications.created))
	}
}

func TestGetProfile(t *testing.T) {
	users := newMemoryUserRepo()
	target := users.add(domain.User{Name: "Test User", Bio: "Test Bio", Location: "Test Location", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodGet, "/api/users/"+strconv.FormatInt(target.ID, 10), "valid_token", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["name"] != "Test User" || body["bio"] != "Test Bio" || body["location"] != "Test Location" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "Test User", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodGet, "/api/users/999", "valid_token", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "User not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestGetProfile_NonNumericID(t *testing.T) {
	users := newMemoryUserRepo()
	users.add(domain.User{Name: "Test User", Token: "valid_token"})
	h := newTestRouter(users, &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodGet, "/api/users/abc", "valid_token", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "User not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(newMemoryUserRepo(), &memoryNotificationRepo{})

	rec, body := doJSON(t, h, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}
