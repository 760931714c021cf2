// Package notes manages collaborator-generated study notes.
package notes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edumate-ai/edumate/internal/inference"
	"github.com/edumate-ai/edumate/internal/student"
)

// ErrAlreadySaved reports saving a note whose identifier already exists in
// the account's note sequence.
var ErrAlreadySaved = errors.New("this note is already saved")

// ErrNotFound reports a lookup for a note identifier that is not in the
// account's sequence.
var ErrNotFound = errors.New("note not found")

// Manager generates note drafts via the collaborator and manages the
// persisted note sequence of one account.
type Manager struct {
	client inference.Client
	repo   student.NoteRepo
	now    func() time.Time
}

func NewManager(client inference.Client, repo student.NoteRepo) *Manager {
	return &Manager{
		client: client,
		repo:   repo,
		now:    time.Now,
	}
}

// Generate produces a draft note. The draft is not persisted until Save
// is called with it.
func (m *Manager) Generate(ctx context.Context, subject, chapter string, profile student.Profile) (student.Note, error) {
	if chapter == "" {
		return student.Note{}, fmt.Errorf("chapter is required")
	}
	response, err := m.client.GenerateNotes(ctx, inference.GenerateNotesRequest{
		Subject: subject,
		Chapter: chapter,
		Profile: profile,
	})
	if err != nil {
		return student.Note{}, fmt.Errorf("client.GenerateNotes() > %w", err)
	}
	return student.Note{
		ID:        uuid.NewString(),
		Subject:   subject,
		Chapter:   chapter,
		Content:   response.Content,
		CreatedAt: m.now(),
	}, nil
}

// Save appends a draft to the account's note sequence. Saving the same
// identifier twice fails with ErrAlreadySaved.
func (m *Manager) Save(email string, note student.Note) error {
	saved, err := m.repo.List(email)
	if err != nil {
		return err
	}
	for _, existing := range saved {
		if existing.ID == note.ID {
			return ErrAlreadySaved
		}
	}
	return m.repo.Replace(email, append(saved, note))
}

// Delete removes a note by identifier. Deleting an absent identifier is a
// no-op, not an error.
func (m *Manager) Delete(email, id string) error {
	saved, err := m.repo.List(email)
	if err != nil {
		return err
	}
	kept := saved[:0]
	for _, note := range saved {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(saved) {
		return nil
	}
	return m.repo.Replace(email, kept)
}

// List returns the account's saved notes in saved order.
func (m *Manager) List(email string) ([]student.Note, error) {
	return m.repo.List(email)
}

// Get returns one saved note by identifier.
func (m *Manager) Get(email, id string) (student.Note, error) {
	saved, err := m.repo.List(email)
	if err != nil {
		return student.Note{}, err
	}
	for _, note := range saved {
		if note.ID == id {
			return note, nil
		}
	}
	return student.Note{}, fmt.Errorf("note %q: %w", id, ErrNotFound)
}
