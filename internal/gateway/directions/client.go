package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/twpayne/go-polyline"

	"service-gas-delivery/internal/domain"
)

const maxBodyBytes = 4 << 20

// HTTPGateway queries a Google-compatible directions API.
type HTTPGateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPGateway creates a directions gateway. A nil client uses http.DefaultClient.
func NewHTTPGateway(client *http.Client, baseURL, apiKey string) *HTTPGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route fetches a driving route from origin to dest.
func (g *HTTPGateway) Route(ctx context.Context, origin, dest domain.Location) (domain.Route, error) {
	q := url.Values{}
	q.Set("origin", formatPoint(origin))
	q.Set("destination", formatPoint(dest))
	q.Set("key", g.apiKey)
	q.Set("mode", "driving")
	q.Set("alternatives", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/maps/api/directions/json?"+q.Encode(), nil)
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions gateway: build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions gateway: do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return domain.Route{}, &StatusError{Code: resp.StatusCode}
	}

	var body directionsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return domain.Route{}, fmt.Errorf("directions gateway: decode: %w", err)
	}

	switch body.Status {
	case "", "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return domain.Route{}, ErrNoRoute
	default:
		return domain.Route{}, &StatusError{Code: resp.StatusCode, Status: body.Status, Message: body.ErrorMessage}
	}

	if len(body.Routes) == 0 || body.Routes[0].OverviewPolyline.Points == "" || len(body.Routes[0].Legs) == 0 {
		return domain.Route{}, ErrNoRoute
	}
	r := body.Routes[0]

	coords, _, err := polyline.DecodeCoords([]byte(r.OverviewPolyline.Points))
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions gateway: decode polyline: %w", err)
	}
	points := make([]domain.Location, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		points = append(points, domain.Location{Lat: c[0], Lng: c[1]})
	}

	leg := r.Legs[0]
	return domain.Route{
		Coords:      points,
		DurationMin: int(math.Round(leg.Duration.Value / 60)),
		DistanceKm:  math.Round(leg.Distance.Value/100) / 10,
	}, nil
}

func formatPoint(l domain.Location) string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lng)
}
