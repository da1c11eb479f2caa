package location

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func yandexBody(pos string) string {
	return fmt.Sprintf(`{"response":{"GeoObjectCollection":{"featureMember":[
		{"GeoObject":{"Point":{"pos":"%s"}}}]}}}`, pos)
}

func TestYandexGeocoder(t *testing.T) {
	t.Run("parses lon-lat pos order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("geocode"); got != "Addr-X" {
				t.Errorf("unexpected geocode param %q", got)
			}
			if got := r.URL.Query().Get("apikey"); got != "test-key" {
				t.Errorf("unexpected apikey %q", got)
			}
			fmt.Fprint(w, yandexBody("37.618423 55.751244"))
		}))
		defer srv.Close()

		g := NewYandexGeocoder(Config{APIKey: "test-key", BaseURL: srv.URL})
		coords, ok, err := g.Geocode(context.Background(), "Addr-X")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected a result")
		}
		if coords.Latitude != 55.751244 || coords.Longitude != 37.618423 {
			t.Fatalf("pos must be read as lon then lat, got %+v", coords)
		}
	})

	t.Run("empty featureMember means no result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`)
		}))
		defer srv.Close()

		g := NewYandexGeocoder(Config{APIKey: "test-key", BaseURL: srv.URL})
		_, ok, err := g.Geocode(context.Background(), "Addr-Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected no result")
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		}))
		defer srv.Close()

		g := NewYandexGeocoder(Config{APIKey: "test-key", BaseURL: srv.URL})
		if _, _, err := g.Geocode(context.Background(), "Addr-X"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed pos is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, yandexBody("not-a-number"))
		}))
		defer srv.Close()

		g := NewYandexGeocoder(Config{APIKey: "test-key", BaseURL: srv.URL})
		if _, _, err := g.Geocode(context.Background(), "Addr-X"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("slow provider times out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			fmt.Fprint(w, yandexBody("37.618423 55.751244"))
		}))
		defer srv.Close()

		g := NewYandexGeocoder(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
		if _, _, err := g.Geocode(context.Background(), "Addr-X"); err == nil {
			t.Fatal("expected timeout error")
		}
	})
}
