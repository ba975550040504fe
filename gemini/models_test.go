package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adriftdev/gemini-client/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListModels_Paginates(t *testing.T) {
	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "1000", r.URL.Query().Get("pageSize"))

		token := r.URL.Query().Get("pageToken")
		tokens = append(tokens, token)

		w.Header().Set("Content-Type", "application/json")
		if token == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"models": []gemini.Model{
					{Name: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", InputTokenLimit: 1048576},
				},
				"nextPageToken": "page-2",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"models": []gemini.Model{
				{Name: "models/gemini-2.5-pro", DisplayName: "Gemini 2.5 Pro"},
			},
		})
	}))
	defer server.Close()

	client := gemini.NewClient("test-key")
	client.SetBaseURL(server.URL)

	models, err := client.ListModels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"", "page-2"}, tokens)
	require.Len(t, models, 2)
	assert.Equal(t, "gemini-2.5-flash", models[0].BaseModelID)
	assert.Equal(t, "gemini-2.5-pro", models[1].BaseModelID)
	assert.Equal(t, "models/gemini-2.5-flash", models[0].Name)
}

func TestClient_ListModels_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"},
		})
	}))
	defer server.Close()

	client := gemini.NewClient("bad-key")
	client.SetBaseURL(server.URL)

	_, err := client.ListModels(context.Background())

	require.Error(t, err)
	var clientErr *gemini.Error
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, gemini.ErrKindAPI, clientErr.Kind)
	assert.Equal(t, http.StatusForbidden, clientErr.StatusCode)
	assert.Equal(t, "API key not valid", clientErr.Message)
}

func TestClient_ListModels_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := gemini.NewClient("test-key")
	client.SetBaseURL(server.URL)

	_, err := client.ListModels(context.Background())

	require.Error(t, err)
	var clientErr *gemini.Error
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, gemini.ErrKindDecode, clientErr.Kind)
}
