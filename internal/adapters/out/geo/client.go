// Package geo implements the RouteEstimator port against the external route
// planning service over HTTP.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

const defaultTimeout = 10 * time.Second

// Client calls the route planning service to estimate the total route
// distance for a batch of orders. The distance feeds the per-kilometer
// freight strategy.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a route estimation client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type estimateRequest struct {
	TenantID string         `json:"tenantId"`
	Stops    []estimateStop `json:"stops"`
}

type estimateStop struct {
	PostalCode int `json:"postalCode"`
	SortIndex  int `json:"sortIndex"`
}

type estimateResponse struct {
	DistanceKm float64 `json:"distanceKm"`
}

// EstimateRouteKm returns the estimated route distance in kilometers for
// visiting the given orders in sort-index order.
func (c *Client) EstimateRouteKm(ctx context.Context, tenantID kernel.UUID, orders []*order.Order) (float64, error) {
	stops := make([]estimateStop, 0, len(orders))
	for _, o := range orders {
		stops = append(stops, estimateStop{
			PostalCode: o.PostalCode(),
			SortIndex:  o.SortIndex(),
		})
	}

	payload, err := json.Marshal(estimateRequest{
		TenantID: tenantID.String(),
		Stops:    stops,
	})
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + "/api/routes/estimate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}

	var res estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	if res.DistanceKm < 0 {
		return 0, fmt.Errorf("route service returned negative distance: %f", res.DistanceKm)
	}

	return res.DistanceKm, nil
}
