package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumate-ai/edumate/internal/store"
	"github.com/edumate-ai/edumate/internal/student"
	"github.com/edumate-ai/edumate/internal/testutil"
)

func newTestController(t *testing.T) (*Controller, *store.FileStore) {
	t.Helper()
	s := testutil.NewStore(t)
	controller := NewController(
		student.NewStoreAccountRepo(s),
		student.NewStoreResultRepo(s),
		student.NewStoreScheduleRepo(s),
		student.NewStoreNoteRepo(s),
		student.NewStoreSessionRepo(s),
	)
	return controller, s
}

func TestController_StartAndEnd(t *testing.T) {
	controller, s := newTestController(t)
	profile := testutil.CreateAccount(t, s, "asha@example.com")
	testutil.CreateResult(t, s, "asha@example.com", "Mathematics", "Algebra", 8, 10)
	testutil.CreateTimetable(t, s, "asha@example.com")
	testutil.CreateNote(t, s, "asha@example.com", "n1", "Science", "Light")

	assert.Nil(t, controller.Active())

	require.NoError(t, controller.Start(profile))
	active := controller.Active()
	require.NotNil(t, active)
	assert.Equal(t, "asha@example.com", active.Profile.Email)
	assert.Len(t, active.Results, 1)
	assert.Len(t, active.Timetable, 1)
	assert.Len(t, active.Notes, 1)

	require.NoError(t, controller.End())
	assert.Nil(t, controller.Active())

	// Logout is not deletion: the records are still in the store.
	results, err := student.NewStoreResultRepo(s).List("asha@example.com")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestController_Start_replacesSession(t *testing.T) {
	controller, s := newTestController(t)
	first := testutil.CreateAccount(t, s, "asha@example.com")
	second := testutil.CreateAccount(t, s, "vikram@example.com")
	testutil.CreateResult(t, s, "asha@example.com", "Mathematics", "Algebra", 8, 10)

	require.NoError(t, controller.Start(first))
	require.NoError(t, controller.Start(second))

	active := controller.Active()
	require.NotNil(t, active)
	assert.Equal(t, "vikram@example.com", active.Profile.Email)
	assert.Empty(t, active.Results)
}

func TestController_Resume(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, controller *Controller, s *store.FileStore)
		wantResumed bool
		wantEmail   string
	}{
		{
			name:        "no pointer",
			setup:       func(t *testing.T, controller *Controller, s *store.FileStore) {},
			wantResumed: false,
		},
		{
			name: "pointer set by a previous process",
			setup: func(t *testing.T, controller *Controller, s *store.FileStore) {
				profile := testutil.CreateAccount(t, s, "asha@example.com")
				testutil.CreateResult(t, s, "asha@example.com", "Science", "Light", 7, 10)
				require.NoError(t, controller.Start(profile))
			},
			wantResumed: true,
			wantEmail:   "asha@example.com",
		},
		{
			name: "stale pointer to a deleted account is cleared",
			setup: func(t *testing.T, controller *Controller, s *store.FileStore) {
				require.NoError(t, student.NewStoreSessionRepo(s).SetActiveIdentity("ghost@example.com"))
			},
			wantResumed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, s := newTestController(t)
			tt.setup(t, controller, s)

			// A fresh controller models a process restart.
			restarted := NewController(
				student.NewStoreAccountRepo(s),
				student.NewStoreResultRepo(s),
				student.NewStoreScheduleRepo(s),
				student.NewStoreNoteRepo(s),
				student.NewStoreSessionRepo(s),
			)
			resumed, err := restarted.Resume()
			require.NoError(t, err)
			assert.Equal(t, tt.wantResumed, resumed)

			if !tt.wantResumed {
				assert.Nil(t, restarted.Active())
				// The pointer is gone either way.
				_, found, err := student.NewStoreSessionRepo(s).ActiveIdentity()
				require.NoError(t, err)
				assert.False(t, found)
				return
			}
			require.NotNil(t, restarted.Active())
			assert.Equal(t, tt.wantEmail, restarted.Active().Profile.Email)
			assert.Len(t, restarted.Active().Results, 1)
		})
	}
}

func TestController_Reload(t *testing.T) {
	controller, s := newTestController(t)
	profile := testutil.CreateAccount(t, s, "asha@example.com")
	require.NoError(t, controller.Start(profile))
	assert.Empty(t, controller.Active().Results)

	// Something appended a result after login.
	testutil.CreateResult(t, s, "asha@example.com", "Mathematics", "Algebra", 9, 10)

	require.NoError(t, controller.Reload())
	assert.Len(t, controller.Active().Results, 1)
}

func TestController_Reload_withoutSession(t *testing.T) {
	controller, _ := newTestController(t)
	assert.Error(t, controller.Reload())
}
