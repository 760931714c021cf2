// Package testutil provides shared test helpers for creating config files and account fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edumate-ai/edumate/internal/store"
	"github.com/edumate-ai/edumate/internal/student"
)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"records", "notes"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  data_directory: %s
  quota_bytes: 1048576
gemini:
  model: gemini-2.5-flash
outputs:
  notes_directory: %s
`,
		filepath.Join(tmpDir, "records"),
		filepath.Join(tmpDir, "notes"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewStore creates a file store in a temporary directory with a quota
// large enough for any test fixture.
func NewStore(t *testing.T) *store.FileStore {
	t.Helper()

	s, err := store.NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)
	return s
}

// AccountOption configures optional fields when creating an account fixture.
type AccountOption func(*student.Account)

// WithStandard sets the grade level and refreshes the subject list for it.
func WithStandard(standard string, stream student.Stream) AccountOption {
	return func(account *student.Account) {
		account.Standard = standard
		account.Stream = stream
		account.Subjects = student.SubjectsFor(standard, stream)
	}
}

// WithBoard sets the education board.
func WithBoard(board student.Board) AccountOption {
	return func(account *student.Account) {
		account.Board = board
	}
}

// CreateAccount persists an account with the password "password" and
// returns its credential-free profile. Defaults to a class 10 CBSE student.
func CreateAccount(t *testing.T, s store.Store, email string, opts ...AccountOption) student.Profile {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	account := student.Account{
		Profile: student.Profile{
			Name:         "Test Student",
			Email:        email,
			ParentMobile: "+91 9876543210",
			Board:        student.BoardCBSE,
			Standard:     "10",
			Subjects:     student.SubjectsFor("10", ""),
			Registered:   true,
		},
		PasswordHash: string(hash),
	}
	for _, opt := range opts {
		opt(&account)
	}

	require.NoError(t, student.NewStoreAccountRepo(s).Save(account))
	return account.Profile
}

// CreateResult persists one graded mock test for the account.
func CreateResult(t *testing.T, s store.Store, email, subject, chapter string, score, totalMarks int) student.TestResult {
	t.Helper()

	result := student.TestResult{
		ID:         fmt.Sprintf("%s-%s-%d", subject, chapter, score),
		Subject:    subject,
		Chapter:    chapter,
		Score:      score,
		TotalMarks: totalMarks,
		Feedback:   "Keep practicing.",
		Date:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, student.NewStoreResultRepo(s).Append(email, result))
	return result
}

// CreateTimetable persists a one day study plan for the account.
func CreateTimetable(t *testing.T, s store.Store, email string) []student.TimeTableEntry {
	t.Helper()

	entries := []student.TimeTableEntry{
		{
			Day: "Monday",
			Slots: []student.Slot{
				{Time: "16:00 - 17:00", Activity: "Mathematics revision", Type: student.SlotStudy},
				{Time: "17:00 - 17:15", Activity: "Break", Type: student.SlotBreak},
			},
		},
	}
	require.NoError(t, student.NewStoreScheduleRepo(s).Replace(email, entries))
	return entries
}

// CreateNote persists one saved study note for the account.
func CreateNote(t *testing.T, s store.Store, email, id, subject, chapter string) student.Note {
	t.Helper()

	repo := student.NewStoreNoteRepo(s)
	notes, err := repo.List(email)
	require.NoError(t, err)

	note := student.Note{
		ID:        id,
		Subject:   subject,
		Chapter:   chapter,
		Content:   "# " + chapter,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Replace(email, append(notes, note)))
	return note
}
