// Package exam implements the mock-exam session workflow as an explicit
// state machine advanced only by discrete events.
package exam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edumate-ai/edumate/internal/inference"
	"github.com/edumate-ai/edumate/internal/student"
)

// State is one stage of an exam session.
type State string

const (
	StateSetup   State = "setup"
	StateLoading State = "loading"
	StateActive  State = "active"
	StateUpload  State = "upload"
	StateGrading State = "grading"
	StateResult  State = "result"
)

// Exam durations. Chapter tests run one hour, full syllabus mocks three.
const (
	ChapterDuration      = 60 * time.Minute
	FullSyllabusDuration = 180 * time.Minute
)

var (
	// ErrInvalidState reports an event that is not legal in the engine's
	// current state.
	ErrInvalidState = errors.New("operation not allowed in current exam state")
	// ErrSubjectRequired reports a start request without a subject.
	ErrSubjectRequired = errors.New("select a subject first")
	// ErrChapterRequired reports a start request with neither a chapter
	// nor the full-syllabus flag.
	ErrChapterRequired = errors.New("enter a chapter or select full syllabus")
	// ErrAnswerSheetRequired reports a submission without a captured
	// answer-sheet image.
	ErrAnswerSheetRequired = errors.New("upload an image of your answers first")
)

// Engine runs a single exam session for one authenticated student. It is
// advanced by discrete events only: Start, Tick, SubmitEarly,
// AttachAnswerSheet, Submit, Acknowledge, Abandon. The countdown is
// derived from wall-clock time against an armed deadline, so missed ticks
// never extend the budget.
type Engine struct {
	client  inference.Client
	results student.ResultRepo
	now     func() time.Time

	state        State
	profile      student.Profile
	subject      string
	chapter      string
	fullSyllabus bool
	questions    []string
	deadline     time.Time
	remaining    time.Duration
	image        []byte
	imageMime    string
	result       *student.TestResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(client inference.Client, results student.ResultRepo, profile student.Profile, opts ...Option) *Engine {
	engine := &Engine{
		client:  client,
		results: results,
		now:     time.Now,
		state:   StateSetup,
		profile: profile,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Questions() []string {
	return e.questions
}

// Remaining returns the time budget left, valid from active onward.
func (e *Engine) Remaining() time.Duration {
	return e.remaining
}

// Result returns the graded result once the engine reaches the result
// state, nil before that.
func (e *Engine) Result() *student.TestResult {
	return e.result
}

// Start generates a question paper and arms the countdown. On a
// collaborator failure the engine returns to setup with the request
// inputs intact so the student can retry.
func (e *Engine) Start(ctx context.Context, subject, chapter string, fullSyllabus bool) error {
	if e.state != StateSetup {
		return fmt.Errorf("start in state %s: %w", e.state, ErrInvalidState)
	}
	if subject == "" {
		return ErrSubjectRequired
	}
	if chapter == "" && !fullSyllabus {
		return ErrChapterRequired
	}

	e.subject = subject
	e.chapter = chapter
	e.fullSyllabus = fullSyllabus
	e.state = StateLoading

	response, err := e.client.GenerateQuestions(ctx, inference.GenerateQuestionsRequest{
		Subject:      subject,
		Chapter:      chapter,
		FullSyllabus: fullSyllabus,
		Profile:      e.profile,
	})
	if err != nil {
		e.state = StateSetup
		return fmt.Errorf("client.GenerateQuestions() > %w", err)
	}

	duration := ChapterDuration
	if fullSyllabus {
		duration = FullSyllabusDuration
	}
	e.questions = response.Questions
	e.deadline = e.now().Add(duration)
	e.remaining = duration
	e.state = StateActive
	return nil
}

// Tick re-derives the remaining budget from the wall clock. Outside the
// active state it is a no-op. When the budget reaches zero the engine
// force-transitions to upload; there is no resume.
func (e *Engine) Tick(now time.Time) {
	if e.state != StateActive {
		return
	}
	remaining := e.deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	// The budget never grows back, even if the clock steps backwards.
	if remaining < e.remaining {
		e.remaining = remaining
	}
	if e.remaining == 0 {
		e.state = StateUpload
	}
}

// SubmitEarly ends the writing phase before the countdown expires.
func (e *Engine) SubmitEarly() error {
	if e.state != StateActive {
		return fmt.Errorf("submit early in state %s: %w", e.state, ErrInvalidState)
	}
	e.state = StateUpload
	return nil
}

// AttachAnswerSheet captures the answer-sheet photo for grading.
func (e *Engine) AttachAnswerSheet(image []byte, mimeType string) error {
	if e.state != StateUpload {
		return fmt.Errorf("attach answer sheet in state %s: %w", e.state, ErrInvalidState)
	}
	if len(image) == 0 {
		return ErrAnswerSheetRequired
	}
	e.image = image
	e.imageMime = mimeType
	return nil
}

// Submit sends the captured answer sheet for grading and, on success,
// persists exactly one TestResult. A collaborator failure leaves the
// engine in upload with the image retained for resubmission. A repeated
// Submit while grading is a no-op.
func (e *Engine) Submit(ctx context.Context) error {
	if e.state == StateGrading {
		return nil
	}
	if e.state != StateUpload {
		return fmt.Errorf("submit in state %s: %w", e.state, ErrInvalidState)
	}
	if len(e.image) == 0 {
		return ErrAnswerSheetRequired
	}

	e.state = StateGrading
	response, err := e.client.GradeSubmission(ctx, inference.GradeSubmissionRequest{
		Questions: e.questions,
		Image:     e.image,
		ImageMime: e.imageMime,
		Profile:   e.profile,
	})
	if err != nil {
		e.state = StateUpload
		return fmt.Errorf("client.GradeSubmission() > %w", err)
	}

	chapter := e.chapter
	if e.fullSyllabus {
		chapter = student.FullSyllabus
	}
	result := student.TestResult{
		ID:             uuid.NewString(),
		Subject:        e.subject,
		Chapter:        chapter,
		Score:          response.Score,
		TotalMarks:     response.TotalMarks,
		Feedback:       response.Feedback,
		CorrectAnswers: response.CorrectAnswers,
		Date:           e.now(),
	}
	if err := e.results.Append(e.profile.Email, result); err != nil {
		e.state = StateUpload
		return fmt.Errorf("results.Append() > %w", err)
	}

	e.notifyParent(result)
	e.result = &result
	e.state = StateResult
	return nil
}

// Acknowledge ends a completed session and discards transient state.
func (e *Engine) Acknowledge() error {
	if e.state != StateResult {
		return fmt.Errorf("acknowledge in state %s: %w", e.state, ErrInvalidState)
	}
	e.reset()
	return nil
}

// Abandon discards an in-progress session without persisting anything.
// Abandoning from setup or result is harmless.
func (e *Engine) Abandon() {
	e.reset()
}

func (e *Engine) reset() {
	e.state = StateSetup
	e.subject = ""
	e.chapter = ""
	e.fullSyllabus = false
	e.questions = nil
	e.deadline = time.Time{}
	e.remaining = 0
	e.image = nil
	e.imageMime = ""
	e.result = nil
}

// notifyParent simulates the SMS sent to the registered parent contact
// when a test completes.
func (e *Engine) notifyParent(result student.TestResult) {
	slog.Default().Info("SMS to parent",
		"mobile", e.profile.ParentMobile,
		"message", fmt.Sprintf("Your child %s completed a test in %s with a score of %d/%d.",
			e.profile.Name, result.Subject, result.Score, result.TotalMarks),
	)
}
