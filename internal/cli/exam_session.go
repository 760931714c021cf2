package cli

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/edumate-ai/edumate/internal/exam"
	"github.com/edumate-ai/edumate/internal/student"
)

// ExamCLI runs one mock test from subject selection to the score screen.
type ExamCLI struct {
	*InteractiveCLI
	engine  *exam.Engine
	profile student.Profile
}

func NewExamCLI(engine *exam.Engine, profile student.Profile) *ExamCLI {
	return &ExamCLI{
		InteractiveCLI: newInteractiveCLI(),
		engine:         engine,
		profile:        profile,
	}
}

func (r *ExamCLI) Session(ctx context.Context) error {
	if err := r.setup(ctx); err != nil {
		return err
	}
	if r.engine.State() != exam.StateActive {
		// Question generation failed, ask again with a fresh prompt.
		return nil
	}

	r.showQuestions()

	// One goroutine owns stdin from here on. The countdown and the upload
	// prompt both consume lines from it, so no two readers ever race on
	// the shared reader and no typed line is lost between the phases.
	lines := r.stdinLines(ctx)
	if err := r.countdown(ctx, lines); err != nil {
		return err
	}
	if err := r.collectAnswerSheet(ctx, lines); err != nil {
		return err
	}

	r.showResult()
	if err := r.engine.Acknowledge(); err != nil {
		return fmt.Errorf("engine.Acknowledge() > %w", err)
	}
	return errEnd
}

func (r *ExamCLI) setup(ctx context.Context) error {
	subject, err := r.readChoice("Subject:", r.profile.Subjects)
	if err != nil {
		return err
	}

	chapter, err := r.readLine("Chapter (empty for full syllabus): ")
	if err != nil {
		return err
	}
	fullSyllabus := chapter == ""

	if fullSyllabus {
		fmt.Fprintln(r.stdoutWriter, "Preparing a 3 hour full syllabus paper...")
	} else {
		fmt.Fprintln(r.stdoutWriter, "Preparing a 1 hour chapter test...")
	}

	if err := r.engine.Start(ctx, subject, chapter, fullSyllabus); err != nil {
		color.Red("Could not prepare the question paper: %v", err)
		fmt.Fprintln(r.stdoutWriter, "Your subject and chapter are kept, try again.")
		return nil
	}
	return nil
}

func (r *ExamCLI) showQuestions() {
	_, _ = r.bold.Fprintln(r.stdoutWriter, "Question paper")
	for i, question := range r.engine.Questions() {
		fmt.Fprintf(r.stdoutWriter, "%d. %s\n", i+1, question)
	}
	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintln(r.stdoutWriter, "Write your answers on paper. Press Enter to finish early.")
}

// stdinLines pumps trimmed input lines into a channel. The channel closes
// when stdin reaches EOF.
func (r *ExamCLI) stdinLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := r.stdinReader.ReadString('\n')
			if err != nil {
				return
			}
			select {
			case lines <- strings.TrimSpace(line):
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// countdown ticks the engine once a second until the time runs out or the
// student finishes early.
func (r *ExamCLI) countdown(ctx context.Context, lines <-chan string) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for r.engine.State() == exam.StateActive {
		select {
		case <-ctx.Done():
			r.engine.Abandon()
			return ctx.Err()
		case now := <-ticker.C:
			r.engine.Tick(now)
			fmt.Fprintf(r.stdoutWriter, "\rTime left: %s ", formatRemaining(r.engine.Remaining()))
		case _, ok := <-lines:
			if !ok {
				r.engine.Abandon()
				return io.EOF
			}
			if err := r.engine.SubmitEarly(); err != nil {
				return fmt.Errorf("engine.SubmitEarly() > %w", err)
			}
		}
	}

	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintln(r.stdoutWriter, "Time is up. Upload a photo of your answer sheet.")
	return nil
}

func (r *ExamCLI) collectAnswerSheet(ctx context.Context, lines <-chan string) error {
	for r.engine.State() != exam.StateResult {
		fmt.Fprint(r.stdoutWriter, "Answer sheet image path: ")

		var path string
		select {
		case <-ctx.Done():
			r.engine.Abandon()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				r.engine.Abandon()
				return io.EOF
			}
			path = line
		}
		if path == "" {
			fmt.Fprintln(r.stdoutWriter, "An answer sheet photo is required for grading.")
			continue
		}

		image, err := os.ReadFile(path)
		if err != nil {
			color.Red("Could not read %s: %v", path, err)
			continue
		}
		if err := r.engine.AttachAnswerSheet(image, imageMimeType(path)); err != nil {
			color.Red("%v", err)
			continue
		}

		fmt.Fprintln(r.stdoutWriter, "Grading your answers...")
		if err := r.engine.Submit(ctx); err != nil {
			color.Red("Grading failed: %v", err)
			fmt.Fprintln(r.stdoutWriter, "Your answer sheet is kept, try submitting again.")
		}
	}
	return nil
}

func (r *ExamCLI) showResult() {
	result := r.engine.Result()
	if result == nil {
		return
	}

	fmt.Fprintln(r.stdoutWriter)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "Score: %d / %d\n", result.Score, result.TotalMarks)
	fmt.Fprintf(r.stdoutWriter, "Feedback: %s\n", result.Feedback)
	if result.CorrectAnswers != "" {
		fmt.Fprintf(r.stdoutWriter, "Correct answers:\n%s\n", result.CorrectAnswers)
	}
	fmt.Fprintln(r.stdoutWriter, "Your parent has been notified about this test.")
}

func formatRemaining(remaining time.Duration) string {
	total := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func imageMimeType(path string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
		return mimeType
	}
	return "image/jpeg"
}
