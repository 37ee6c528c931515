package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

const DefaultBaseURL = "http://ip-api.com/json"

type ipAPIResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Query       string `json:"query"`
}

// Client classifies client IPs using an ip-api.com compatible endpoint.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	domesticCode string
}

type ClientConfig struct {
	BaseURL      string
	DomesticCode string
	Timeout      time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(baseURL, "/"),
		domesticCode: strings.ToUpper(cfg.DomesticCode),
	}
}

// Detect looks up ip. Private and loopback addresses cannot be classified
// and fail with domain.ErrLocaleLookup.
func (c *Client) Detect(ctx context.Context, ip string) (*valueobject.Locale, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return nil, fmt.Errorf("%w: address %q is not public", domain.ErrLocaleLookup, ip)
	}

	query := url.Values{}
	query.Set("fields", "status,message,country,countryCode,query")
	uri := c.baseURL + "/" + url.PathEscape(parsed.String()) + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLocaleLookup, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrLocaleLookup, res.StatusCode)
	}

	var payload ipAPIResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLocaleLookup, err)
	}
	if payload.Status != "success" || payload.CountryCode == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocaleLookup, payload.Message)
	}

	code := strings.ToUpper(payload.CountryCode)
	return &valueobject.Locale{
		Country:     payload.Country,
		CountryCode: code,
		IsDomestic:  code == c.domesticCode,
	}, nil
}
