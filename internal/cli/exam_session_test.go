package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edumate-ai/edumate/internal/exam"
	"github.com/edumate-ai/edumate/internal/inference"
	mock_inference "github.com/edumate-ai/edumate/internal/mocks/inference"
	"github.com/edumate-ai/edumate/internal/student"
	"github.com/edumate-ai/edumate/internal/testutil"
)

func newTestExamCLI(t *testing.T, input string) (*ExamCLI, *mock_inference.MockClient, student.ResultRepo, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock_inference.NewMockClient(ctrl)

	s := testutil.NewStore(t)
	profile := testutil.CreateAccount(t, s, "a@x.com")
	results := student.NewStoreResultRepo(s)

	var output bytes.Buffer
	examCLI := NewExamCLI(exam.NewEngine(client, results, profile), profile)
	examCLI.stdinReader = bufio.NewReader(strings.NewReader(input))
	examCLI.stdoutWriter = &output
	return examCLI, client, results, &output
}

func TestExamCLI_Session(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "answers.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("photo"), 0644))

	// Subject choice, chapter, an early-finish line, then the answer sheet
	// path. The path is typed exactly once and must reach the upload
	// prompt even though the countdown consumed lines before it.
	input := "1\nAlgebra\n\n" + imagePath + "\n"
	examCLI, client, results, output := newTestExamCLI(t, input)

	client.EXPECT().
		GenerateQuestions(gomock.Any(), gomock.Any()).
		Return(inference.GenerateQuestionsResponse{Questions: []string{"Q1 (2 marks)"}}, nil)
	client.EXPECT().
		GradeSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request inference.GradeSubmissionRequest) (inference.GradeSubmissionResponse, error) {
			assert.Equal(t, []byte("photo"), request.Image)
			assert.Equal(t, "image/jpeg", request.ImageMime)
			return inference.GradeSubmissionResponse{Score: 8, TotalMarks: 10, Feedback: "good"}, nil
		})

	// The timeout turns a stuck upload prompt into a test failure instead
	// of a hang.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.ErrorIs(t, examCLI.Session(ctx), errEnd)

	assert.Equal(t, exam.StateSetup, examCLI.engine.State())
	assert.Contains(t, output.String(), "Score: 8 / 10")

	persisted, err := results.List("a@x.com")
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 8, persisted[0].Score)
	assert.Equal(t, 10, persisted[0].TotalMarks)
}

func TestExamCLI_Session_closedInputAbandons(t *testing.T) {
	// Input ends right after the test starts, before any submission.
	examCLI, client, results, _ := newTestExamCLI(t, "1\nAlgebra\n")

	client.EXPECT().
		GenerateQuestions(gomock.Any(), gomock.Any()).
		Return(inference.GenerateQuestionsResponse{Questions: []string{"Q1"}}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.ErrorIs(t, examCLI.Session(ctx), io.EOF)

	assert.Equal(t, exam.StateSetup, examCLI.engine.State())

	persisted, err := results.List("a@x.com")
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
