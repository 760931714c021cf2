// Package gemini implements the inference.Client interface against the
// Google Gemini generateContent API.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"resty.dev/v3"

	"github.com/edumate-ai/edumate/internal/inference"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://generativelanguage.googleapis.com/v1beta")
	client.SetHeader("x-goog-api-key", apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client.
func (client *Client) GetModel() string {
	return client.model
}

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerationConfig struct {
	Temperature      float32 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// generateContent posts one request and returns the first candidate's text.
func (client *Client) generateContent(ctx context.Context, requestBody GenerateContentRequest) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		Post("/models/" + client.model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateContentResponse)
	if responseBody == nil || len(responseBody.Candidates) == 0 {
		return "", fmt.Errorf("empty response body or candidates: %s", response.String())
	}

	var text strings.Builder
	for _, part := range responseBody.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}

	slog.Default().Debug("gemini response",
		"model", client.model,
		"finishReason", responseBody.Candidates[0].FinishReason,
		"usage", responseBody.UsageMetadata,
	)
	return text.String(), nil
}

// GenerateQuestions implements the inference.Client interface.
func (client *Client) GenerateQuestions(
	ctx context.Context,
	params inference.GenerateQuestionsRequest,
) (inference.GenerateQuestionsResponse, error) {
	scope := fmt.Sprintf("the chapter %q", params.Chapter)
	if params.FullSyllabus {
		scope = "the full syllabus"
	}
	prompt := fmt.Sprintf(`You are an exam paper setter for the %s board, class %s.
Generate a mock test question paper for the subject %q covering %s.
Follow the board's question paper pattern for this class. Do not include answers.

Return ONLY a JSON object of the form {"questions": ["...", "..."]} with one
string per question, numbered marks included in the question text.`,
		params.Profile.Board, params.Profile.Standard, params.Subject, scope)

	var result inference.GenerateQuestionsResponse
	err := client.callJSON(ctx, "GenerateQuestions", GenerateContentRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{Temperature: 0.4, ResponseMimeType: "application/json"},
	}, &result)
	if err != nil {
		return inference.GenerateQuestionsResponse{}, err
	}
	if len(result.Questions) == 0 {
		return inference.GenerateQuestionsResponse{}, &inference.CollaboratorError{
			Op:  "GenerateQuestions",
			Err: fmt.Errorf("no questions returned"),
		}
	}
	return result, nil
}

// GradeSubmission implements the inference.Client interface. The captured
// answer sheet travels as inline base64 image data.
func (client *Client) GradeSubmission(
	ctx context.Context,
	params inference.GradeSubmissionRequest,
) (inference.GradeSubmissionResponse, error) {
	prompt := fmt.Sprintf(`You are grading a handwritten answer sheet for a %s board class %s student.
The questions were:
%s

Read the handwriting in the attached photo, grade every answer, and return
ONLY a JSON object of the form:
{"score": <int>, "total_marks": <int>, "feedback": "<overall feedback>", "correct_answers": "<model answers, one per question>"}`,
		params.Profile.Board, params.Profile.Standard, strings.Join(params.Questions, "\n"))

	mimeType := params.ImageMime
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	var result inference.GradeSubmissionResponse
	err := client.callJSON(ctx, "GradeSubmission", GenerateContentRequest{
		Contents: []Content{{
			Role: "user",
			Parts: []Part{
				{Text: prompt},
				{InlineData: &InlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(params.Image),
				}},
			},
		}},
		GenerationConfig: &GenerationConfig{Temperature: 0.2, ResponseMimeType: "application/json"},
	}, &result)
	if err != nil {
		return inference.GradeSubmissionResponse{}, err
	}
	if result.TotalMarks == 0 {
		return inference.GradeSubmissionResponse{}, &inference.CollaboratorError{
			Op:  "GradeSubmission",
			Err: fmt.Errorf("grading response has zero total marks"),
		}
	}
	return result, nil
}

// GenerateNotes implements the inference.Client interface.
func (client *Client) GenerateNotes(
	ctx context.Context,
	params inference.GenerateNotesRequest,
) (inference.GenerateNotesResponse, error) {
	prompt := fmt.Sprintf(`Write detailed revision notes on the chapter %q of %s
for a %s board class %s student. Use markdown headings, short paragraphs,
bullet points for key facts, and finish with a summary of formulas or
definitions to memorize. Return only the notes.`,
		params.Chapter, params.Subject, params.Profile.Board, params.Profile.Standard)

	content, err := client.callText(ctx, "GenerateNotes", GenerateContentRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{Temperature: 0.5},
	})
	if err != nil {
		return inference.GenerateNotesResponse{}, err
	}
	return inference.GenerateNotesResponse{Content: content}, nil
}

// GenerateSchedule implements the inference.Client interface.
func (client *Client) GenerateSchedule(
	ctx context.Context,
	params inference.GenerateScheduleRequest,
) (inference.GenerateScheduleResponse, error) {
	prompt := fmt.Sprintf(`Create a weekly after-school study timetable for a %s board
class %s student whose school ends at %s. The student studies these
subjects: %s. Cover Monday through Sunday, alternate study blocks with
short breaks, and include one mock-test slot on the weekend.

Return ONLY a JSON object of the form:
{"entries": [{"day": "Monday", "slots": [{"time": "17:00 - 18:00", "activity": "Physics revision", "type": "study"}]}]}
where "type" is one of "study", "break", "mock-test".`,
		params.Profile.Board, params.Profile.Standard, params.SchoolEndTime,
		strings.Join(params.Profile.Subjects, ", "))

	var result inference.GenerateScheduleResponse
	err := client.callJSON(ctx, "GenerateSchedule", GenerateContentRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{Temperature: 0.4, ResponseMimeType: "application/json"},
	}, &result)
	if err != nil {
		return inference.GenerateScheduleResponse{}, err
	}
	if len(result.Entries) == 0 {
		return inference.GenerateScheduleResponse{}, &inference.CollaboratorError{
			Op:  "GenerateSchedule",
			Err: fmt.Errorf("no timetable entries returned"),
		}
	}
	return result, nil
}

// SolveDoubt implements the inference.Client interface.
func (client *Client) SolveDoubt(
	ctx context.Context,
	params inference.SolveDoubtRequest,
) (inference.SolveDoubtResponse, error) {
	prompt := fmt.Sprintf(`You are a friendly tutor for a %s board class %s student.
Answer the doubt below from the class syllabus, step by step, in simple
language. Keep the answer focused and under 300 words.

Conversation so far:
%s

Doubt: %s`,
		params.Profile.Board, params.Profile.Standard, params.History, params.Question)

	content, err := client.callText(ctx, "SolveDoubt", GenerateContentRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{Temperature: 0.6},
	})
	if err != nil {
		return inference.SolveDoubtResponse{}, err
	}
	return inference.SolveDoubtResponse{Answer: content}, nil
}

// callJSON runs one generateContent call with retries and decodes the
// returned text as JSON into out.
func (client *Client) callJSON(ctx context.Context, op string, requestBody GenerateContentRequest, out any) error {
	content, err := client.callText(ctx, op, requestBody)
	if err != nil {
		return err
	}
	if err := json.NewDecoder(strings.NewReader(content)).Decode(out); err != nil {
		slog.Default().Error("failed to parse gemini response as JSON",
			"op", op,
			"content", content,
			"error", err)
		return &inference.CollaboratorError{Op: op, Err: fmt.Errorf("json.Unmarshal(%s) > %w", content, err)}
	}
	return nil
}

func (client *Client) callText(ctx context.Context, op string, requestBody GenerateContentRequest) (string, error) {
	content, err := client.withRetry(ctx, func() (string, error) {
		return client.generateContent(ctx, requestBody)
	})
	if err != nil {
		return "", &inference.CollaboratorError{Op: op, Err: err}
	}
	return content, nil
}
