package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:         "Asha Kumar",
		Email:        "asha@example.com",
		Password:     "pass1234",
		ParentMobile: "+91 9876543210",
		Board:        BoardCBSE,
		Standard:     "10",
		Subjects:     SubjectsFor("10", ""),
	}
}

func setupManager(t *testing.T) *Manager {
	t.Helper()
	s := newTestStore(t)
	manager, err := NewManager(
		NewStoreAccountRepo(s),
		NewStoreResultRepo(s),
		NewStoreScheduleRepo(s),
		NewStoreNoteRepo(s),
		NewStoreNoteDraftRepo(s),
	)
	require.NoError(t, err)
	return manager
}

func TestManager_Register(t *testing.T) {
	tests := []struct {
		name       string
		input      func() RegisterInput
		wantErr    error
		wantErrMsg string
	}{
		{
			name:  "valid class 10 student",
			input: validRegisterInput,
		},
		{
			name: "email is trimmed",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Email = "  asha@example.com  "
				return input
			},
		},
		{
			name: "class 12 requires a stream",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Standard = "12"
				input.Stream = ""
				return input
			},
			wantErr: ErrValidation,
		},
		{
			name: "class 12 with stream",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Standard = "12"
				input.Stream = StreamCommerce
				input.Subjects = SubjectsFor("12", StreamCommerce)
				return input
			},
		},
		{
			name: "stream below class 11 is dropped, not rejected",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Stream = StreamScience
				return input
			},
		},
		{
			name: "missing email",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Email = ""
				return input
			},
			wantErr: ErrValidation,
		},
		{
			name: "malformed email",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Email = "not-an-email"
				return input
			},
			wantErr: ErrValidation,
		},
		{
			name: "short password",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Password = "abc"
				return input
			},
			wantErr: ErrValidation,
		},
		{
			name: "malformed parent mobile",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.ParentMobile = "not a number"
				return input
			},
			wantErr: ErrValidation,
		},
		{
			name: "unknown board",
			input: func() RegisterInput {
				input := validRegisterInput()
				input.Board = "IB"
				return input
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := setupManager(t)

			profile, err := manager.Register(tt.input())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "asha@example.com", profile.Email)
			assert.True(t, profile.Registered)
			if profile.Standard != "11" && profile.Standard != "12" {
				assert.Empty(t, profile.Stream)
			}

			// The credential never appears in the returned projection,
			// and authentication works with the registered password.
			_, err = manager.Authenticate(profile.Email, "pass1234")
			assert.NoError(t, err)
		})
	}
}

func TestManager_Register_duplicateIdentity(t *testing.T) {
	manager := setupManager(t)

	_, err := manager.Register(validRegisterInput())
	require.NoError(t, err)

	// Registering the same email again must not overwrite the record.
	input := validRegisterInput()
	input.Name = "Someone Else"
	input.Password = "different"
	_, err = manager.Register(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// The original credential still works.
	profile, err := manager.Authenticate("asha@example.com", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "Asha Kumar", profile.Name)
}

func TestManager_Authenticate(t *testing.T) {
	manager := setupManager(t)
	_, err := manager.Register(validRegisterInput())
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "correct credential",
			email:    "asha@example.com",
			password: "pass1234",
		},
		{
			name:     "email trimmed before lookup",
			email:    " asha@example.com ",
			password: "pass1234",
		},
		{
			name:     "wrong password",
			email:    "asha@example.com",
			password: "wrong",
			wantErr:  ErrInvalidCredential,
		},
		{
			name:     "unknown identity",
			email:    "nobody@example.com",
			password: "pass1234",
			wantErr:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := manager.Authenticate(tt.email, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "asha@example.com", profile.Email)
		})
	}
}

func TestManager_Delete(t *testing.T) {
	s := newTestStore(t)
	accounts := NewStoreAccountRepo(s)
	results := NewStoreResultRepo(s)
	schedules := NewStoreScheduleRepo(s)
	notes := NewStoreNoteRepo(s)
	drafts := NewStoreNoteDraftRepo(s)
	manager, err := NewManager(accounts, results, schedules, notes, drafts)
	require.NoError(t, err)

	_, err = manager.Register(validRegisterInput())
	require.NoError(t, err)
	require.NoError(t, results.Append("asha@example.com", TestResult{ID: "1", Subject: "Mathematics"}))
	require.NoError(t, schedules.Replace("asha@example.com", []TimeTableEntry{{Day: "Monday"}}))
	require.NoError(t, notes.Replace("asha@example.com", []Note{{ID: "n1"}}))
	require.NoError(t, drafts.Put("asha@example.com", Note{ID: "d1"}))

	tests := []struct {
		name            string
		confirmEmail    string
		confirmPassword string
		wantErr         error
	}{
		{
			name:            "confirmation email mismatch",
			confirmEmail:    "other@example.com",
			confirmPassword: "pass1234",
			wantErr:         ErrIdentityMismatch,
		},
		{
			name:            "wrong password",
			confirmEmail:    "asha@example.com",
			confirmPassword: "wrong",
			wantErr:         ErrInvalidCredential,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := manager.Delete("asha@example.com", tt.confirmEmail, tt.confirmPassword)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			// Nothing was removed.
			account, findErr := accounts.Find("asha@example.com")
			require.NoError(t, findErr)
			assert.NotNil(t, account)
		})
	}

	// Correct confirmation removes the account and every dependent record.
	require.NoError(t, manager.Delete("asha@example.com", "asha@example.com", "pass1234"))

	account, err := accounts.Find("asha@example.com")
	require.NoError(t, err)
	assert.Nil(t, account)

	gotResults, err := results.List("asha@example.com")
	require.NoError(t, err)
	assert.Empty(t, gotResults)

	gotSchedule, err := schedules.Get("asha@example.com")
	require.NoError(t, err)
	assert.Empty(t, gotSchedule)

	gotNotes, err := notes.List("asha@example.com")
	require.NoError(t, err)
	assert.Empty(t, gotNotes)

	gotDraft, err := drafts.Get("asha@example.com")
	require.NoError(t, err)
	assert.Nil(t, gotDraft)

	// Deleting a missing account reports ErrNotFound.
	err = manager.Delete("asha@example.com", "asha@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ListAccounts(t *testing.T) {
	s := newTestStore(t)
	results := NewStoreResultRepo(s)
	manager, err := NewManager(
		NewStoreAccountRepo(s),
		results,
		NewStoreScheduleRepo(s),
		NewStoreNoteRepo(s),
		NewStoreNoteDraftRepo(s),
	)
	require.NoError(t, err)

	summaries, err := manager.ListAccounts()
	require.NoError(t, err)
	assert.Empty(t, summaries)

	first := validRegisterInput()
	_, err = manager.Register(first)
	require.NoError(t, err)

	second := validRegisterInput()
	second.Email = "vikram@example.com"
	second.Name = "Vikram Rao"
	_, err = manager.Register(second)
	require.NoError(t, err)

	require.NoError(t, results.Append("asha@example.com", TestResult{ID: "1"}))
	require.NoError(t, results.Append("asha@example.com", TestResult{ID: "2"}))

	summaries, err = manager.ListAccounts()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "asha@example.com", summaries[0].Profile.Email)
	assert.Equal(t, 2, summaries[0].TestCount)
	assert.Equal(t, "vikram@example.com", summaries[1].Profile.Email)
	assert.Equal(t, 0, summaries[1].TestCount)
}

func TestSubjectsFor(t *testing.T) {
	tests := []struct {
		name     string
		standard string
		stream   Stream
		want     []string
	}{
		{
			name:     "class 8 general set",
			standard: "8",
			want:     []string{"Mathematics", "Science", "Social Science", "English", "Hindi"},
		},
		{
			name:     "class 11 science",
			standard: "11",
			stream:   StreamScience,
			want:     []string{"Physics", "Chemistry", "Mathematics", "Biology", "English"},
		},
		{
			name:     "class 12 commerce",
			standard: "12",
			stream:   StreamCommerce,
			want:     []string{"Accountancy", "Business Studies", "Economics", "Mathematics", "English"},
		},
		{
			name:     "class 12 arts",
			standard: "12",
			stream:   StreamArts,
			want:     []string{"History", "Geography", "Political Science", "Economics", "English"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubjectsFor(tt.standard, tt.stream))
		})
	}
}
