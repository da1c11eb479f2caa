package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubService struct {
	rows []*DashboardOrder
	err  error
}

func (s *stubService) AssembleDashboard(ctx context.Context) ([]*DashboardOrder, error) {
	return s.rows, s.err
}

func TestDashboardHandler(t *testing.T) {
	t.Run("returns dashboard rows", func(t *testing.T) {
		rows := []*DashboardOrder{{
			OrderID: uuid.New(),
			Address: "Order-Addr",
			Candidates: []RankedCandidate{
				{RestaurantName: "Near", DistanceKm: 0.515, Label: "Near - 0.515 km"},
			},
		}}
		router := chi.NewRouter()
		NewHandler(&stubService{rows: rows}, nil).RegisterRoutes(router)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/fulfillment/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []*DashboardOrder
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(got) != 1 || got[0].Candidates[0].Label != "Near - 0.515 km" {
			t.Fatalf("unexpected body %+v", got)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		router := chi.NewRouter()
		NewHandler(&stubService{err: errors.New("db down")}, nil).RegisterRoutes(router)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/fulfillment/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
