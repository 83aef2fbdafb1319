// Package mealdb implements meal image lookup via TheMealDB API
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pantrychef/pantrychef/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Client looks up meal metadata on TheMealDB
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a new TheMealDB client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := cfg.MealDB.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.MealDB.BaseURL, "/"),
		logger:     logger,
	}
}

type searchResponse struct {
	Meals []struct {
		MealThumb string `json:"strMealThumb"`
	} `json:"meals"`
}

// FindMealImage returns the thumbnail URL of the first meal matching
// the dish name, or an empty string when nothing matches
func (c *Client) FindMealImage(ctx context.Context, dishName string) (string, error) {
	endpoint := c.baseURL + "/search.php?s=" + url.QueryEscape(dishName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("meal lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("meal lookup returned status %d", resp.StatusCode)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return "", fmt.Errorf("failed to decode meal response: %w", err)
	}

	// the API returns "meals": null for no match
	if len(search.Meals) == 0 || search.Meals[0].MealThumb == "" {
		c.logger.Debug("no meal image found", zap.String("dish", dishName))
		return "", nil
	}
	return search.Meals[0].MealThumb, nil
}
