package resources

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/edumate-ai/edumate/internal/student"
)

// Resource is a single study link found on the web.
type Resource struct {
	Title string
	URL   string
}

type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

func NewClient(apiKey string, model string) *Client {
	return &Client{
		httpClient: resty.New().SetBaseURL("https://generativelanguage.googleapis.com/v1beta"),
		apiKey:     apiKey,
		model:      model,
	}
}

type searchRequest struct {
	Contents []searchContent `json:"contents"`
	Tools    []searchTool    `json:"tools"`
}

type searchContent struct {
	Parts []searchPart `json:"parts"`
}

type searchPart struct {
	Text string `json:"text"`
}

type searchTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type searchResponse struct {
	Candidates []struct {
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// Search looks up web study materials for a topic grounded with a web search tool.
// The student profile narrows results to the right board and class.
func (c *Client) Search(ctx context.Context, topic string, profile student.Profile) ([]Resource, error) {
	query := fmt.Sprintf("Find study materials, videos and articles about %q for a class %s student of the %s board.",
		topic, profile.Standard, profile.Board)

	request := searchRequest{
		Contents: []searchContent{
			{
				Parts: []searchPart{
					{Text: query},
				},
			},
		},
		Tools: []searchTool{
			{},
		},
	}

	var response searchResponse
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(request).
		SetResult(&response).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return nil, fmt.Errorf("client.R.Post > %w, response %s", err, string(res.Body()))
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var result []Resource
	seen := map[string]bool{}
	for _, candidate := range response.Candidates {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			uri := strings.TrimSpace(chunk.Web.URI)
			if uri == "" || seen[uri] {
				continue
			}
			seen[uri] = true

			title := strings.TrimSpace(chunk.Web.Title)
			if title == "" {
				title = uri
			}
			result = append(result, Resource{
				Title: title,
				URL:   uri,
			})
		}
	}
	return result, nil
}
