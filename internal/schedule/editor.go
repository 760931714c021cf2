// Package schedule manages the weekly study timetable.
package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/edumate-ai/edumate/internal/inference"
	"github.com/edumate-ai/edumate/internal/student"
)

// SlotField names an editable field of a timetable slot.
type SlotField string

const (
	FieldTime     SlotField = "time"
	FieldActivity SlotField = "activity"
	FieldType     SlotField = "type"
)

var (
	// ErrSlotNotFound reports an edit against a day or slot index that
	// does not exist in the working timetable.
	ErrSlotNotFound = errors.New("no such timetable slot")
	// ErrUnknownField reports an edit against a field name that is not
	// time, activity, or type.
	ErrUnknownField = errors.New("unknown slot field")
)

// Editor holds one account's timetable as working state. Regenerate
// persists immediately; EditSlot only mutates working state until Save.
type Editor struct {
	client  inference.Client
	repo    student.ScheduleRepo
	email   string
	working []student.TimeTableEntry
	dirty   bool
}

func NewEditor(client inference.Client, repo student.ScheduleRepo, email string) *Editor {
	return &Editor{
		client: client,
		repo:   repo,
		email:  email,
	}
}

// Load reads the persisted timetable into working state.
func (e *Editor) Load() error {
	entries, err := e.repo.Get(e.email)
	if err != nil {
		return err
	}
	e.working = entries
	e.dirty = false
	return nil
}

// Working returns the current working timetable.
func (e *Editor) Working() []student.TimeTableEntry {
	return e.working
}

// Dirty reports whether the working state has unsaved edits.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Regenerate asks the collaborator for a fresh weekly plan and persists
// it immediately, overwriting any prior sequence.
func (e *Editor) Regenerate(ctx context.Context, schoolEndTime string, profile student.Profile) ([]student.TimeTableEntry, error) {
	response, err := e.client.GenerateSchedule(ctx, inference.GenerateScheduleRequest{
		SchoolEndTime: schoolEndTime,
		Profile:       profile,
	})
	if err != nil {
		return nil, fmt.Errorf("client.GenerateSchedule() > %w", err)
	}
	if err := e.repo.Replace(e.email, response.Entries); err != nil {
		return nil, err
	}
	e.working = response.Entries
	e.dirty = false
	return e.working, nil
}

// EditSlot mutates one slot of the working timetable. Nothing is
// persisted until Save.
func (e *Editor) EditSlot(day string, slotIndex int, field SlotField, value string) error {
	for i := range e.working {
		if e.working[i].Day != day {
			continue
		}
		if slotIndex < 0 || slotIndex >= len(e.working[i].Slots) {
			return fmt.Errorf("%s slot %d: %w", day, slotIndex, ErrSlotNotFound)
		}
		slot := &e.working[i].Slots[slotIndex]
		switch field {
		case FieldTime:
			slot.Time = value
		case FieldActivity:
			slot.Activity = value
		case FieldType:
			switch student.SlotType(value) {
			case student.SlotStudy, student.SlotBreak, student.SlotMockTest:
				slot.Type = student.SlotType(value)
			default:
				return fmt.Errorf("slot type %q: %w", value, ErrUnknownField)
			}
		default:
			return fmt.Errorf("field %q: %w", field, ErrUnknownField)
		}
		e.dirty = true
		return nil
	}
	return fmt.Errorf("day %q: %w", day, ErrSlotNotFound)
}

// Save persists the working timetable wholesale.
func (e *Editor) Save() error {
	if err := e.repo.Replace(e.email, e.working); err != nil {
		return err
	}
	e.dirty = false
	return nil
}
