package main

import (
	"errors"
	"fmt"

	"github.com/edumate-ai/edumate/internal/config"
	"github.com/edumate-ai/edumate/internal/inference"
	"github.com/edumate-ai/edumate/internal/inference/gemini"
	"github.com/edumate-ai/edumate/internal/session"
	"github.com/edumate-ai/edumate/internal/store"
	"github.com/edumate-ai/edumate/internal/student"
)

var errNotLoggedIn = errors.New("not logged in, run edumate login first")

// app wires the record store, the repositories, and the managers every
// command depends on.
type app struct {
	cfg       *config.Config
	store     *store.FileStore
	accounts  *student.Manager
	sessions  *session.Controller
	results   student.ResultRepo
	schedules student.ScheduleRepo
	notes     student.NoteRepo
	drafts    student.NoteDraftRepo
}

func newApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}

	s, err := store.NewFileStore(cfg.Storage.DataDirectory, cfg.Storage.QuotaBytes)
	if err != nil {
		return nil, fmt.Errorf("store.NewFileStore() > %w", err)
	}

	accounts := student.NewStoreAccountRepo(s)
	results := student.NewStoreResultRepo(s)
	schedules := student.NewStoreScheduleRepo(s)
	notes := student.NewStoreNoteRepo(s)
	drafts := student.NewStoreNoteDraftRepo(s)

	manager, err := student.NewManager(accounts, results, schedules, notes, drafts)
	if err != nil {
		return nil, fmt.Errorf("student.NewManager() > %w", err)
	}

	return &app{
		cfg:       cfg,
		store:     s,
		accounts:  manager,
		sessions:  session.NewController(accounts, results, schedules, notes, student.NewStoreSessionRepo(s)),
		results:   results,
		schedules: schedules,
		notes:     notes,
		drafts:    drafts,
	}, nil
}

// requireSession resumes the durable session pointer and fails when no
// student is logged in.
func (a *app) requireSession() (*session.Session, error) {
	resumed, err := a.sessions.Resume()
	if err != nil {
		return nil, fmt.Errorf("sessions.Resume() > %w", err)
	}
	if !resumed {
		return nil, errNotLoggedIn
	}
	return a.sessions.Active(), nil
}

func (a *app) collaborator() (inference.Client, error) {
	if a.cfg.Gemini.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	return gemini.NewClient(a.cfg.Gemini.APIKey, a.cfg.Gemini.Model, inference.DefaultMaxRetryAttempts), nil
}
