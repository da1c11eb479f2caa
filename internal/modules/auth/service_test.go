package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/starburger/foodcart-backend/internal/modules/auth"
	"github.com/starburger/foodcart-backend/internal/modules/user"
	"github.com/starburger/foodcart-backend/internal/modules/user/mocks"
)

var jwtKey = []byte("test-secret")

func accountWith(t *testing.T, password string, isStaff bool) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &user.User{
		ID:           uuid.New(),
		Email:        "manager@example.com",
		PasswordHash: string(hash),
		IsStaff:      isStaff,
	}
}

func TestLoginAndVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := accountWith(t, "secret", true)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "manager@example.com").Return(account, nil).AnyTimes()

	service := auth.NewService(repo, jwtKey)

	t.Run("valid credentials produce a verifiable token", func(t *testing.T) {
		token, err := service.Login(context.Background(), "manager@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		identity, err := service.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if identity.UserID != account.ID.String() || !identity.IsStaff {
			t.Fatalf("unexpected identity %+v", identity)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		if _, err := service.Login(context.Background(), "manager@example.com", "nope"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := service.Verify("not.a.token"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestRequireStaff(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tokenFor := func(t *testing.T, isStaff bool) string {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		account := accountWith(t, "secret", isStaff)
		repo := mocks.NewMockRepository(ctrl)
		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(account, nil)
		token, err := auth.NewService(repo, jwtKey).Login(context.Background(), account.Email, "secret")
		if err != nil {
			t.Fatal(err)
		}
		return token
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	middleware := auth.RequireStaff(auth.NewService(mocks.NewMockRepository(ctrl), jwtKey))
	guarded := middleware(next)

	t.Run("staff token is admitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, true))
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-staff token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, false))
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
