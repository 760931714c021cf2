package student

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrValidation reports missing or malformed registration input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound reports an unknown identity key.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateIdentity reports a registration against an existing
	// identity key.
	ErrDuplicateIdentity = errors.New("an account with this email already exists")
	// ErrInvalidCredential reports a password mismatch.
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrIdentityMismatch reports a deletion confirmation that names a
	// different identity than the one being deleted.
	ErrIdentityMismatch = errors.New("email does not match the current account")
)

// RegisterInput carries everything a new student supplies during the
// two-step registration flow.
type RegisterInput struct {
	Name         string   `yaml:"name" validate:"required"`
	Email        string   `yaml:"email" validate:"required,email"`
	Password     string   `yaml:"password" validate:"required,min=4"`
	ParentMobile string   `yaml:"parent_mobile" validate:"required,mobile"`
	Board        Board    `yaml:"board" validate:"required,oneof=CBSE ICSE 'State Board'"`
	Standard     string   `yaml:"standard" validate:"required,oneof=6 7 8 9 10 11 12"`
	Stream       Stream   `yaml:"stream" validate:"required_if=Standard 11,required_if=Standard 12,omitempty,oneof=Science Commerce Arts"`
	Subjects     []string `yaml:"subjects" validate:"min=1"`
}

// Manager owns account creation, authentication, and deletion. It is the
// only component that reads or writes credential material.
type Manager struct {
	accounts  AccountRepo
	results   ResultRepo
	schedules ScheduleRepo
	notes     NoteRepo
	drafts    NoteDraftRepo
	validate  *validator.Validate
	trans     ut.Translator
}

func NewManager(accounts AccountRepo, results ResultRepo, schedules ScheduleRepo, notes NoteRepo, drafts NoteDraftRepo) (*Manager, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}
	return &Manager{
		accounts:  accounts,
		results:   results,
		schedules: schedules,
		notes:     notes,
		drafts:    drafts,
		validate:  validate,
		trans:     trans,
	}, nil
}

// Register validates the input and creates a new account. The identity key
// is the trimmed email; registering an existing identity fails with
// ErrDuplicateIdentity rather than overwriting the record.
func (m *Manager) Register(input RegisterInput) (Profile, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Standard != "11" && input.Standard != "12" {
		input.Stream = ""
	}
	if err := m.validate.Struct(input); err != nil {
		return Profile{}, translateValidationErrors(err, m.trans)
	}

	existing, err := m.accounts.Find(input.Email)
	if err != nil {
		return Profile{}, err
	}
	if existing != nil {
		return Profile{}, fmt.Errorf("register %q: %w", input.Email, ErrDuplicateIdentity)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, fmt.Errorf("bcrypt.GenerateFromPassword() > %w", err)
	}

	account := Account{
		Profile: Profile{
			Name:         input.Name,
			Email:        input.Email,
			ParentMobile: input.ParentMobile,
			Board:        input.Board,
			Standard:     input.Standard,
			Stream:       input.Stream,
			Subjects:     input.Subjects,
			Registered:   true,
		},
		PasswordHash: string(hash),
	}
	if err := m.accounts.Save(account); err != nil {
		return Profile{}, err
	}
	return account.Profile, nil
}

// Authenticate compares the supplied password against the stored hash and
// returns the credential-free projection on success.
func (m *Manager) Authenticate(email, password string) (Profile, error) {
	email = strings.TrimSpace(email)
	account, err := m.accounts.Find(email)
	if err != nil {
		return Profile{}, err
	}
	if account == nil {
		return Profile{}, fmt.Errorf("authenticate %q: %w", email, ErrNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return Profile{}, ErrInvalidCredential
	}
	return account.Profile, nil
}

// Delete removes an account and every record kind keyed to its identity.
// The caller must re-supply both identity and credential even when a
// session is already active. Dependent records are deleted before the
// account record so a partial failure can only leave an account pointing
// at already-removed dependents, never orphaned dependents.
func (m *Manager) Delete(email, confirmEmail, confirmPassword string) error {
	email = strings.TrimSpace(email)
	if strings.TrimSpace(confirmEmail) != email {
		return ErrIdentityMismatch
	}

	account, err := m.accounts.Find(email)
	if err != nil {
		return err
	}
	if account == nil {
		return fmt.Errorf("delete %q: %w", email, ErrNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(confirmPassword)); err != nil {
		return ErrInvalidCredential
	}

	if err := m.results.DeleteAll(email); err != nil {
		return err
	}
	if err := m.schedules.DeleteAll(email); err != nil {
		return err
	}
	if err := m.notes.DeleteAll(email); err != nil {
		return err
	}
	if err := m.drafts.Clear(email); err != nil {
		return err
	}
	return m.accounts.Delete(email)
}

// AccountSummary is the administrative view of one registered student.
type AccountSummary struct {
	Profile   Profile `json:"profile"`
	TestCount int     `json:"test_count"`
}

// ListAccounts returns a summary of every registered account, with the
// number of persisted test results per student.
func (m *Manager) ListAccounts() ([]AccountSummary, error) {
	emails, err := m.accounts.ListEmails()
	if err != nil {
		return nil, err
	}

	summaries := make([]AccountSummary, 0, len(emails))
	for _, email := range emails {
		account, err := m.accounts.Find(email)
		if err != nil {
			return nil, err
		}
		if account == nil {
			continue
		}
		results, err := m.results.List(email)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, AccountSummary{
			Profile:   account.Profile,
			TestCount: len(results),
		})
	}
	return summaries, nil
}
