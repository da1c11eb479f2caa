package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Geocoder turns a free-text address into coordinates. The second return
// value is false when the provider has no result for the address; errors are
// reserved for transport and provider failures.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, bool, error)
}

// Config holds the geocoding provider settings. It is passed explicitly to
// the components that need it instead of living in process-wide state.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

const defaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

// YandexGeocoder calls the Yandex Maps HTTP geocoding API.
type YandexGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewYandexGeocoder(cfg Config) *YandexGeocoder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &YandexGeocoder{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

func (g *YandexGeocoder) Geocode(ctx context.Context, address string) (Coordinates, bool, error) {
	params := url.Values{}
	params.Set("apikey", g.apiKey)
	params.Set("geocode", address)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Coordinates{}, false, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, false, fmt.Errorf("geocoder returned %s", resp.Status)
	}

	var body yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, false, fmt.Errorf("decode geocoder response: %w", err)
	}

	members := body.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return Coordinates{}, false, nil
	}

	// Point.pos is "longitude latitude" separated by a space.
	parts := strings.Fields(members[0].GeoObject.Point.Pos)
	if len(parts) != 2 {
		return Coordinates{}, false, fmt.Errorf("malformed pos %q", members[0].GeoObject.Point.Pos)
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("malformed longitude %q", parts[0])
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("malformed latitude %q", parts[1])
	}
	return Coordinates{Latitude: lat, Longitude: lon}, true, nil
}
