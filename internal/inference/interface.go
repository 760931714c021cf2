// Package inference defines the AI collaborator interface used for test
// generation, answer-sheet grading, notes, schedules, and doubt solving.
package inference

import (
	"context"
	"fmt"

	"github.com/edumate-ai/edumate/internal/student"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client is the collaborator consumed by the exam engine and the document
// and schedule managers. Every call is fallible and latency-bearing; no
// caller may assume a response arrives, or arrives quickly.
type Client interface {
	GenerateQuestions(ctx context.Context, params GenerateQuestionsRequest) (GenerateQuestionsResponse, error)
	GradeSubmission(ctx context.Context, params GradeSubmissionRequest) (GradeSubmissionResponse, error)
	GenerateNotes(ctx context.Context, params GenerateNotesRequest) (GenerateNotesResponse, error)
	GenerateSchedule(ctx context.Context, params GenerateScheduleRequest) (GenerateScheduleResponse, error)
	SolveDoubt(ctx context.Context, params SolveDoubtRequest) (SolveDoubtResponse, error)
}

// CollaboratorError wraps any failure from the collaborator. Callers may
// retry the originating operation; the error never implies corrupted
// local state.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// GenerateQuestionsRequest asks for a question paper for one subject,
// either for a single chapter or the full syllabus.
type GenerateQuestionsRequest struct {
	Subject      string          `json:"subject"`
	Chapter      string          `json:"chapter,omitempty"`
	FullSyllabus bool            `json:"full_syllabus"`
	Profile      student.Profile `json:"profile"`
}

type GenerateQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// GradeSubmissionRequest carries the generated questions plus a photo of
// the handwritten answer sheet.
type GradeSubmissionRequest struct {
	Questions []string        `json:"questions"`
	Image     []byte          `json:"-"`
	ImageMime string          `json:"-"`
	Profile   student.Profile `json:"profile"`
}

type GradeSubmissionResponse struct {
	Score          int    `json:"score"`
	TotalMarks     int    `json:"total_marks"`
	Feedback       string `json:"feedback"`
	CorrectAnswers string `json:"correct_answers"`
}

type GenerateNotesRequest struct {
	Subject string          `json:"subject"`
	Chapter string          `json:"chapter"`
	Profile student.Profile `json:"profile"`
}

type GenerateNotesResponse struct {
	Content string `json:"content"`
}

// GenerateScheduleRequest asks for a full weekly study plan starting after
// school ends.
type GenerateScheduleRequest struct {
	SchoolEndTime string          `json:"school_end_time"`
	Profile       student.Profile `json:"profile"`
}

type GenerateScheduleResponse struct {
	Entries []student.TimeTableEntry `json:"entries"`
}

// SolveDoubtRequest carries one question plus the running conversation
// transcript for context.
type SolveDoubtRequest struct {
	Question string          `json:"question"`
	History  string          `json:"history,omitempty"`
	Profile  student.Profile `json:"profile"`
}

type SolveDoubtResponse struct {
	Answer string `json:"answer"`
}

const (
	DefaultMaxRetryAttempts = 3
)
