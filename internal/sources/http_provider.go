package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// HTTPProvider talks to the upstream account aggregator over its JSON API.
// Authentication is a static API key; per-user scoping happens through the
// URL path. Timeouts come from configuration so one slow upstream cannot
// hold an aggregation run hostage.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type connectionPayload struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Kind        string `json:"kind"`
}

type connectionDataPayload struct {
	Connection   connectionPayload `json:"connection"`
	Accounts     []RawAccount      `json:"accounts"`
	Transactions []RawTransaction  `json:"transactions"`
}

func (p *HTTPProvider) ListConnections(ctx context.Context, userID uuid.UUID) ([]Connection, error) {
	endpoint := fmt.Sprintf("%s/users/%s/connections", p.baseURL, userID)

	var payload []connectionPayload
	if err := p.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	connections := make([]Connection, 0, len(payload))
	for _, item := range payload {
		connections = append(connections, Connection{
			ID:          item.ID,
			Institution: item.Institution,
			Kind:        item.Kind,
		})
	}
	return connections, nil
}

func (p *HTTPProvider) FetchConnection(ctx context.Context, userID uuid.UUID, connectionID string, dateRange models.DateRange) (*ConnectionData, error) {
	query := url.Values{}
	if !dateRange.Start.IsZero() {
		query.Set("start_date", dateRange.Start.Format(models.DateLayout))
	}
	if !dateRange.End.IsZero() {
		query.Set("end_date", dateRange.End.Format(models.DateLayout))
	}

	endpoint := fmt.Sprintf("%s/users/%s/connections/%s/data", p.baseURL, userID, url.PathEscape(connectionID))
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload connectionDataPayload
	if err := p.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("fetch connection %s: %w", connectionID, err)
	}

	return &ConnectionData{
		Connection: Connection{
			ID:          payload.Connection.ID,
			Institution: payload.Connection.Institution,
			Kind:        payload.Connection.Kind,
		},
		Accounts:     payload.Accounts,
		Transactions: payload.Transactions,
	}, nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
