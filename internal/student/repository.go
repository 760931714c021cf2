package student

import (
	"fmt"
	"strings"

	"github.com/edumate-ai/edumate/internal/store"
)

// Record key layout. Every per-student record kind is namespaced by the
// identity key (the student's email as entered, trimmed).
const (
	accountKeyPrefix  = "account:"
	resultsKeyPrefix  = "results:"
	scheduleKeyPrefix = "schedule:"
	notesKeyPrefix    = "notes:"
	noteDraftPrefix   = "notedraft:"
	activeIdentityKey = "activeIdentity"
)

// AccountRepo persists full account records, credential included.
type AccountRepo interface {
	Find(email string) (*Account, error)
	Save(account Account) error
	Delete(email string) error
	ListEmails() ([]string, error)
}

// ResultRepo persists the ordered test result sequence of an account.
type ResultRepo interface {
	List(email string) ([]TestResult, error)
	Append(email string, result TestResult) error
	DeleteAll(email string) error
}

// ScheduleRepo persists the weekly timetable of an account. The sequence
// is always replaced wholesale.
type ScheduleRepo interface {
	Get(email string) ([]TimeTableEntry, error)
	Replace(email string, entries []TimeTableEntry) error
	DeleteAll(email string) error
}

// NoteRepo persists the saved note sequence of an account.
type NoteRepo interface {
	List(email string) ([]Note, error)
	Replace(email string, notes []Note) error
	DeleteAll(email string) error
}

// NoteDraftRepo persists at most one unsaved generated note per account,
// so a draft survives between the generate and save commands.
type NoteDraftRepo interface {
	Get(email string) (*Note, error)
	Put(email string, note Note) error
	Clear(email string) error
}

// SessionRepo persists the durable active-identity pointer that survives
// process restarts. The pointer is absent while logged out.
type SessionRepo interface {
	ActiveIdentity() (string, bool, error)
	SetActiveIdentity(email string) error
	ClearActiveIdentity() error
}

// StoreAccountRepo implements AccountRepo over the record store.
type StoreAccountRepo struct {
	store store.Store
}

func NewStoreAccountRepo(s store.Store) *StoreAccountRepo {
	return &StoreAccountRepo{store: s}
}

// Find returns the account for an identity key, or nil when absent.
func (r *StoreAccountRepo) Find(email string) (*Account, error) {
	var account Account
	found, err := r.store.Get(accountKeyPrefix+email, &account)
	if err != nil {
		return nil, fmt.Errorf("store.Get(account) > %w", err)
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

func (r *StoreAccountRepo) Save(account Account) error {
	if err := r.store.Set(accountKeyPrefix+account.Email, account); err != nil {
		return fmt.Errorf("store.Set(account) > %w", err)
	}
	return nil
}

func (r *StoreAccountRepo) Delete(email string) error {
	if err := r.store.Delete(accountKeyPrefix + email); err != nil {
		return fmt.Errorf("store.Delete(account) > %w", err)
	}
	return nil
}

// ListEmails enumerates every registered identity key.
func (r *StoreAccountRepo) ListEmails() ([]string, error) {
	keys, err := r.store.ListKeys(accountKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("store.ListKeys(account) > %w", err)
	}
	emails := make([]string, 0, len(keys))
	for _, key := range keys {
		emails = append(emails, strings.TrimPrefix(key, accountKeyPrefix))
	}
	return emails, nil
}

// StoreResultRepo implements ResultRepo over the record store.
type StoreResultRepo struct {
	store store.Store
}

func NewStoreResultRepo(s store.Store) *StoreResultRepo {
	return &StoreResultRepo{store: s}
}

func (r *StoreResultRepo) List(email string) ([]TestResult, error) {
	var results []TestResult
	if _, err := r.store.Get(resultsKeyPrefix+email, &results); err != nil {
		return nil, fmt.Errorf("store.Get(results) > %w", err)
	}
	return results, nil
}

// Append adds a result to the end of the account's sequence. Results are
// never updated or removed individually.
func (r *StoreResultRepo) Append(email string, result TestResult) error {
	results, err := r.List(email)
	if err != nil {
		return err
	}
	results = append(results, result)
	if err := r.store.Set(resultsKeyPrefix+email, results); err != nil {
		return fmt.Errorf("store.Set(results) > %w", err)
	}
	return nil
}

func (r *StoreResultRepo) DeleteAll(email string) error {
	if err := r.store.Delete(resultsKeyPrefix + email); err != nil {
		return fmt.Errorf("store.Delete(results) > %w", err)
	}
	return nil
}

// StoreScheduleRepo implements ScheduleRepo over the record store.
type StoreScheduleRepo struct {
	store store.Store
}

func NewStoreScheduleRepo(s store.Store) *StoreScheduleRepo {
	return &StoreScheduleRepo{store: s}
}

func (r *StoreScheduleRepo) Get(email string) ([]TimeTableEntry, error) {
	var entries []TimeTableEntry
	if _, err := r.store.Get(scheduleKeyPrefix+email, &entries); err != nil {
		return nil, fmt.Errorf("store.Get(schedule) > %w", err)
	}
	return entries, nil
}

func (r *StoreScheduleRepo) Replace(email string, entries []TimeTableEntry) error {
	if err := r.store.Set(scheduleKeyPrefix+email, entries); err != nil {
		return fmt.Errorf("store.Set(schedule) > %w", err)
	}
	return nil
}

func (r *StoreScheduleRepo) DeleteAll(email string) error {
	if err := r.store.Delete(scheduleKeyPrefix + email); err != nil {
		return fmt.Errorf("store.Delete(schedule) > %w", err)
	}
	return nil
}

// StoreNoteRepo implements NoteRepo over the record store.
type StoreNoteRepo struct {
	store store.Store
}

func NewStoreNoteRepo(s store.Store) *StoreNoteRepo {
	return &StoreNoteRepo{store: s}
}

func (r *StoreNoteRepo) List(email string) ([]Note, error) {
	var notes []Note
	if _, err := r.store.Get(notesKeyPrefix+email, &notes); err != nil {
		return nil, fmt.Errorf("store.Get(notes) > %w", err)
	}
	return notes, nil
}

func (r *StoreNoteRepo) Replace(email string, notes []Note) error {
	if err := r.store.Set(notesKeyPrefix+email, notes); err != nil {
		return fmt.Errorf("store.Set(notes) > %w", err)
	}
	return nil
}

func (r *StoreNoteRepo) DeleteAll(email string) error {
	if err := r.store.Delete(notesKeyPrefix + email); err != nil {
		return fmt.Errorf("store.Delete(notes) > %w", err)
	}
	return nil
}

// StoreNoteDraftRepo implements NoteDraftRepo over the record store.
type StoreNoteDraftRepo struct {
	store store.Store
}

func NewStoreNoteDraftRepo(s store.Store) *StoreNoteDraftRepo {
	return &StoreNoteDraftRepo{store: s}
}

func (r *StoreNoteDraftRepo) Get(email string) (*Note, error) {
	var note Note
	found, err := r.store.Get(noteDraftPrefix+email, &note)
	if err != nil {
		return nil, fmt.Errorf("store.Get(notedraft) > %w", err)
	}
	if !found {
		return nil, nil
	}
	return &note, nil
}

func (r *StoreNoteDraftRepo) Put(email string, note Note) error {
	if err := r.store.Set(noteDraftPrefix+email, note); err != nil {
		return fmt.Errorf("store.Set(notedraft) > %w", err)
	}
	return nil
}

func (r *StoreNoteDraftRepo) Clear(email string) error {
	if err := r.store.Delete(noteDraftPrefix + email); err != nil {
		return fmt.Errorf("store.Delete(notedraft) > %w", err)
	}
	return nil
}

// StoreSessionRepo implements SessionRepo over the record store.
type StoreSessionRepo struct {
	store store.Store
}

func NewStoreSessionRepo(s store.Store) *StoreSessionRepo {
	return &StoreSessionRepo{store: s}
}

func (r *StoreSessionRepo) ActiveIdentity() (string, bool, error) {
	var email string
	found, err := r.store.Get(activeIdentityKey, &email)
	if err != nil {
		return "", false, fmt.Errorf("store.Get(activeIdentity) > %w", err)
	}
	return email, found, nil
}

func (r *StoreSessionRepo) SetActiveIdentity(email string) error {
	if err := r.store.Set(activeIdentityKey, email); err != nil {
		return fmt.Errorf("store.Set(activeIdentity) > %w", err)
	}
	return nil
}

func (r *StoreSessionRepo) ClearActiveIdentity() error {
	if err := r.store.Delete(activeIdentityKey); err != nil {
		return fmt.Errorf("store.Delete(activeIdentity) > %w", err)
	}
	return nil
}
