package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const listModelsPageSize = 1000

// Model describes one model exposed by the API.
type Model struct {
	Name                       string   `json:"name"`
	BaseModelID                string   `json:"baseModelId,omitempty"`
	Version                    string   `json:"version,omitempty"`
	DisplayName                string   `json:"displayName,omitempty"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

type modelListPage struct {
	Models        []Model `json:"models"`
	NextPageToken string  `json:"nextPageToken"`
}

// ListModels returns all available models, following the API's pagination.
// BaseModelID is filled from the model name with the "models/" prefix
// stripped.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var models []Model
	pageToken := ""

	for {
		u := fmt.Sprintf("%s/models?key=%s&pageSize=%d", c.baseURL, c.apiKey, listModelsPageSize)
		if pageToken != "" {
			u += "&pageToken=" + url.QueryEscape(pageToken)
		}

		raw, err := c.do(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		var page modelListPage
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, NewDecodeError(raw, err)
		}

		models = append(models, page.Models...)
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	for i := range models {
		models[i].BaseModelID = strings.TrimPrefix(models[i].Name, "models/")
	}
	return models, nil
}
