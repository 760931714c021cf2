// Package session tracks the single authenticated identity and its loaded
// working state.
package session

import (
	"fmt"

	"github.com/edumate-ai/edumate/internal/student"
)

// Session is the in-memory, credential-free state of the authenticated
// student: the profile projection plus the dependent records loaded from
// the store.
type Session struct {
	Profile   student.Profile
	Results   []student.TestResult
	Timetable []student.TimeTableEntry
	Notes     []student.Note
}

// Controller owns zero or one active Session. It is a plain value passed
// to the components that need it, never ambient global state. The durable
// active-identity pointer makes a login survive process restarts until an
// explicit logout.
type Controller struct {
	accounts  student.AccountRepo
	results   student.ResultRepo
	schedules student.ScheduleRepo
	notes     student.NoteRepo
	sessions  student.SessionRepo

	active *Session
}

func NewController(
	accounts student.AccountRepo,
	results student.ResultRepo,
	schedules student.ScheduleRepo,
	notes student.NoteRepo,
	sessions student.SessionRepo,
) *Controller {
	return &Controller{
		accounts:  accounts,
		results:   results,
		schedules: schedules,
		notes:     notes,
		sessions:  sessions,
	}
}

// Active returns the current session, or nil when logged out.
func (c *Controller) Active() *Session {
	return c.active
}

// Start activates a session for an authenticated profile: it stores the
// durable pointer and loads the identity's dependent records into working
// state. Starting over an existing session replaces it.
func (c *Controller) Start(profile student.Profile) error {
	if err := c.sessions.SetActiveIdentity(profile.Email); err != nil {
		return err
	}
	session, err := c.load(profile)
	if err != nil {
		return err
	}
	c.active = session
	return nil
}

// End clears the in-memory session, its working state, and the durable
// pointer. The identity's records stay in the store; logout is not
// deletion.
func (c *Controller) End() error {
	c.active = nil
	return c.sessions.ClearActiveIdentity()
}

// Resume re-hydrates the session from the durable pointer on process
// start, without re-authentication. It reports whether a session was
// resumed. A pointer naming a deleted account is cleared silently.
func (c *Controller) Resume() (bool, error) {
	email, found, err := c.sessions.ActiveIdentity()
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	account, err := c.accounts.Find(email)
	if err != nil {
		return false, err
	}
	if account == nil {
		// Stale pointer left behind by a failed account deletion.
		if err := c.sessions.ClearActiveIdentity(); err != nil {
			return false, err
		}
		return false, nil
	}

	session, err := c.load(account.Profile)
	if err != nil {
		return false, err
	}
	c.active = session
	return true, nil
}

// Reload refreshes the working state of the active session from the
// store, e.g. after an exam appended a result.
func (c *Controller) Reload() error {
	if c.active == nil {
		return fmt.Errorf("no active session")
	}
	session, err := c.load(c.active.Profile)
	if err != nil {
		return err
	}
	c.active = session
	return nil
}

func (c *Controller) load(profile student.Profile) (*Session, error) {
	results, err := c.results.List(profile.Email)
	if err != nil {
		return nil, err
	}
	timetable, err := c.schedules.Get(profile.Email)
	if err != nil {
		return nil, err
	}
	notes, err := c.notes.List(profile.Email)
	if err != nil {
		return nil, err
	}
	return &Session{
		Profile:   profile,
		Results:   results,
		Timetable: timetable,
		Notes:     notes,
	}, nil
}
