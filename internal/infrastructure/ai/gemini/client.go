// Package gemini implements recipe generation against the Gemini API
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pantrychef/pantrychef/internal/infrastructure/config"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	"go.uber.org/zap"
)

const systemInstruction = "You are PantryChef, a culinary assistant. " +
	"Given a dish name or a list of ingredients, respond with a recipe " +
	"as JSON matching the requested schema. Be concise and practical."

// Client calls the Gemini generateContent endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := cfg.AI.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.AI.BaseURL, "/"),
		apiKey:     cfg.AI.APIKey,
		model:      cfg.AI.Model,
		logger:     logger,
	}
}

type generateRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   schema  `json:"responseSchema"`
}

type schema struct {
	Type       string            `json:"type"`
	Properties map[string]schema `json:"properties,omitempty"`
	Items      *schema           `json:"items,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func recipeSchema() schema {
	stringArray := schema{Type: "ARRAY", Items: &schema{Type: "STRING"}}
	return schema{
		Type: "OBJECT",
		Properties: map[string]schema{
			"dish_name":        {Type: "STRING"},
			"instructions":     stringArray,
			"ingredients_list": stringArray,
		},
		Required: []string{"dish_name", "instructions", "ingredients_list"},
	}
}

// Generate sends a prompt and decodes the structured recipe reply.
// A response that does not decode into the expected shape is an error,
// never a partially filled recipe.
func (c *Client) Generate(ctx context.Context, prompt string) (*outbound.GeneratedRecipe, error) {
	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.7,
			ResponseMimeType: "application/json",
			ResponseSchema:   recipeSchema(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("generation API returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, fmt.Errorf("generation API returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generation API returned no candidates")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	recipe, err := parseRecipe(text)
	if err != nil {
		c.logger.Warn("unparseable generation output", zap.Error(err))
		return nil, err
	}
	return recipe, nil
}

// parseRecipe decodes the model output, trimming any stray text
// around the JSON object before decoding.
func parseRecipe(text string) (*outbound.GeneratedRecipe, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var recipe outbound.GeneratedRecipe
	if err := json.Unmarshal([]byte(text[start:end+1]), &recipe); err != nil {
		return nil, fmt.Errorf("malformed recipe JSON: %w", err)
	}
	if recipe.DishName == "" || len(recipe.Instructions) == 0 {
		return nil, fmt.Errorf("incomplete recipe in model output")
	}
	return &recipe, nil
}
