package student

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumate-ai/edumate/internal/store"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)
	return s
}

func TestStoreAccountRepo(t *testing.T) {
	s := newTestStore(t)
	repo := NewStoreAccountRepo(s)

	got, err := repo.Find("a@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	account := Account{
		Profile: Profile{
			Name:       "Asha",
			Email:      "a@example.com",
			Board:      BoardCBSE,
			Standard:   "10",
			Subjects:   SubjectsFor("10", ""),
			Registered: true,
		},
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Save(account))

	got, err = repo.Find("a@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, account, *got)

	emails, err := repo.ListEmails()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com"}, emails)

	require.NoError(t, repo.Delete("a@example.com"))
	got, err = repo.Find("a@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreResultRepo_Append(t *testing.T) {
	s := newTestStore(t)
	repo := NewStoreResultRepo(s)

	results, err := repo.List("a@example.com")
	require.NoError(t, err)
	assert.Empty(t, results)

	first := TestResult{ID: "1", Subject: "Mathematics", Chapter: "Algebra", Score: 8, TotalMarks: 10}
	second := TestResult{ID: "2", Subject: "Science", Chapter: FullSyllabus, Score: 70, TotalMarks: 100}
	require.NoError(t, repo.Append("a@example.com", first))
	require.NoError(t, repo.Append("a@example.com", second))

	results, err = repo.List("a@example.com")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "2", results[1].ID)

	require.NoError(t, repo.DeleteAll("a@example.com"))
	results, err = repo.List("a@example.com")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStoreScheduleRepo_Replace(t *testing.T) {
	s := newTestStore(t)
	repo := NewStoreScheduleRepo(s)

	entries := []TimeTableEntry{
		{
			Day: "Monday",
			Slots: []Slot{
				{Time: "16:00 - 17:00", Activity: "Physics revision", Type: SlotStudy},
			},
		},
	}
	require.NoError(t, repo.Replace("a@example.com", entries))

	got, err := repo.Get("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	// Replace is wholesale.
	replacement := []TimeTableEntry{{Day: "Tuesday"}}
	require.NoError(t, repo.Replace("a@example.com", replacement))
	got, err = repo.Get("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestStoreNoteDraftRepo(t *testing.T) {
	s := newTestStore(t)
	repo := NewStoreNoteDraftRepo(s)

	got, err := repo.Get("a@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	draft := Note{
		ID:        "draft-1",
		Subject:   "Science",
		Chapter:   "Light",
		Content:   "# Light",
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Put("a@example.com", draft))

	got, err = repo.Get("a@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, draft, *got)

	require.NoError(t, repo.Clear("a@example.com"))
	got, err = repo.Get("a@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing an absent draft is a no-op.
	require.NoError(t, repo.Clear("a@example.com"))
}

func TestStoreSessionRepo(t *testing.T) {
	s := newTestStore(t)
	repo := NewStoreSessionRepo(s)

	_, found, err := repo.ActiveIdentity()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetActiveIdentity("a@example.com"))
	email, found, err := repo.ActiveIdentity()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a@example.com", email)

	require.NoError(t, repo.ClearActiveIdentity())
	_, found, err = repo.ActiveIdentity()
	require.NoError(t, err)
	assert.False(t, found)
}
