package resources

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumate-ai/edumate/internal/student"
)

func groundedResponse(chunks ...map[string]string) string {
	type web struct {
		URI   string `json:"uri"`
		Title string `json:"title"`
	}
	type chunk struct {
		Web web `json:"web"`
	}
	var cs []chunk
	for _, c := range chunks {
		cs = append(cs, chunk{Web: web{URI: c["uri"], Title: c["title"]}})
	}
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{
				"groundingMetadata": map[string]any{
					"groundingChunks": cs,
				},
			},
		},
	})
	return string(body)
}

func TestClient_Search(t *testing.T) {
	profile := student.Profile{
		Board:    student.BoardCBSE,
		Standard: "10",
	}

	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want      []Resource
		wantError string
	}{
		{
			name: "results parsed from grounding chunks",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
				assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var request searchRequest
				require.NoError(t, json.Unmarshal(body, &request))
				require.Len(t, request.Contents, 1)
				assert.Contains(t, request.Contents[0].Parts[0].Text, "photosynthesis")
				assert.Contains(t, request.Contents[0].Parts[0].Text, "class 10")
				assert.Contains(t, request.Contents[0].Parts[0].Text, "CBSE")
				require.Len(t, request.Tools, 1)

				_, _ = w.Write([]byte(groundedResponse(
					map[string]string{"uri": "https://example.com/photosynthesis", "title": "Photosynthesis basics"},
					map[string]string{"uri": "https://example.com/leaf", "title": "Leaf structure"},
				)))
			},
			want: []Resource{
				{Title: "Photosynthesis basics", URL: "https://example.com/photosynthesis"},
				{Title: "Leaf structure", URL: "https://example.com/leaf"},
			},
		},
		{
			name: "duplicate links collapsed and empty titles fall back to the link",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(groundedResponse(
					map[string]string{"uri": "https://example.com/a", "title": "First"},
					map[string]string{"uri": "https://example.com/a", "title": "First again"},
					map[string]string{"uri": "https://example.com/b", "title": ""},
					map[string]string{"uri": "", "title": "No link"},
				)))
			},
			want: []Resource{
				{Title: "First", URL: "https://example.com/a"},
				{Title: "https://example.com/b", URL: "https://example.com/b"},
			},
		},
		{
			name: "no grounding metadata means no results",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[{}]}`))
			},
			want: nil,
		},
		{
			name: "non 200 status",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
			},
			wantError: "status code: 403",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &Client{
				httpClient: resty.New().SetBaseURL(server.URL + "/v1beta"),
				apiKey:     "test-api-key",
				model:      "gemini-2.5-flash",
			}

			got, err := client.Search(context.Background(), "photosynthesis", profile)

			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
