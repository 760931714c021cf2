package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/edumate-ai/edumate/internal/schedule"
	"github.com/edumate-ai/edumate/internal/student"
)

// TimetableCLI is the interactive editor for the weekly study plan.
type TimetableCLI struct {
	*InteractiveCLI
	editor  *schedule.Editor
	profile student.Profile
}

func NewTimetableCLI(editor *schedule.Editor, profile student.Profile) *TimetableCLI {
	return &TimetableCLI{
		InteractiveCLI: newInteractiveCLI(),
		editor:         editor,
		profile:        profile,
	}
}

func (r *TimetableCLI) Session(ctx context.Context) error {
	line, err := r.readLine("timetable> ")
	if err != nil {
		return err
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "show":
		r.showTimetable()
	case "regenerate":
		if len(fields) != 2 {
			fmt.Fprintln(r.stdoutWriter, "usage: regenerate <school-end-time, e.g. 15:30>")
			return nil
		}
		fmt.Fprintln(r.stdoutWriter, "Building your study plan...")
		if _, err := r.editor.Regenerate(ctx, fields[1], r.profile); err != nil {
			color.Red("Could not build a timetable: %v", err)
			return nil
		}
		r.showTimetable()
	case "edit":
		r.editSlot(fields[1:])
	case "save":
		if err := r.editor.Save(); err != nil {
			return fmt.Errorf("editor.Save() > %w", err)
		}
		fmt.Fprintln(r.stdoutWriter, "Timetable saved.")
	case "quit", "exit":
		if r.editor.Dirty() {
			fmt.Fprintln(r.stdoutWriter, "Unsaved edits discarded.")
		}
		return errEnd
	default:
		fmt.Fprintln(r.stdoutWriter, "commands: show, regenerate <time>, edit <day> <slot> <field> <value>, save, quit")
	}
	return nil
}

func (r *TimetableCLI) editSlot(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(r.stdoutWriter, "usage: edit <day> <slot> <time|activity|type> <value>")
		return
	}

	slotIndex, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.stdoutWriter, "invalid slot number %q\n", args[1])
		return
	}

	value := strings.Join(args[3:], " ")
	if err := r.editor.EditSlot(args[0], slotIndex-1, schedule.SlotField(args[2]), value); err != nil {
		color.Red("%v", err)
		return
	}
	fmt.Fprintln(r.stdoutWriter, "Edited. Use save to keep the change.")
}

func (r *TimetableCLI) showTimetable() {
	entries := r.editor.Working()
	if len(entries) == 0 {
		fmt.Fprintln(r.stdoutWriter, "No timetable yet. Use regenerate <school-end-time> to build one.")
		return
	}

	for _, entry := range entries {
		_, _ = r.bold.Fprintln(r.stdoutWriter, entry.Day)
		for i, slot := range entry.Slots {
			fmt.Fprintf(r.stdoutWriter, "  %d. %s  %s (%s)\n", i+1, slot.Time, slot.Activity, slot.Type)
		}
	}
	if r.editor.Dirty() {
		_, _ = r.italic.Fprintln(r.stdoutWriter, "(unsaved edits)")
	}
}
