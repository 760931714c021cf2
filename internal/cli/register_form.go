package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edumate-ai/edumate/internal/student"
)

// RegistrationForm collects a registration in two steps, the personal
// details first and the academic details second.
type RegistrationForm struct {
	*InteractiveCLI
}

func NewRegistrationForm() *RegistrationForm {
	return &RegistrationForm{
		InteractiveCLI: newInteractiveCLI(),
	}
}

func (f *RegistrationForm) Fill() (student.RegisterInput, error) {
	var input student.RegisterInput

	_, _ = f.bold.Fprintln(f.stdoutWriter, "Step 1 of 2: about you")
	var err error
	if input.Name, err = f.readLine("Full name: "); err != nil {
		return input, err
	}
	if input.Email, err = f.readLine("Email: "); err != nil {
		return input, err
	}
	if input.Password, err = f.readLine("Password: "); err != nil {
		return input, err
	}
	if input.ParentMobile, err = f.readLine("Parent mobile number: "); err != nil {
		return input, err
	}

	_, _ = f.bold.Fprintln(f.stdoutWriter, "Step 2 of 2: your class")
	board, err := f.readChoice("Board:", boardOptions())
	if err != nil {
		return input, err
	}
	input.Board = student.Board(board)

	if input.Standard, err = f.readChoice("Class:", student.Standards); err != nil {
		return input, err
	}

	if input.Standard == "11" || input.Standard == "12" {
		stream, err := f.readChoice("Stream:", streamOptions())
		if err != nil {
			return input, err
		}
		input.Stream = student.Stream(stream)
	}

	subjects := student.SubjectsFor(input.Standard, input.Stream)
	if input.Subjects, err = f.readSubjects(subjects); err != nil {
		return input, err
	}

	return input, nil
}

// readSubjects lets the student keep the full list or pick a subset by
// comma separated numbers.
func (f *RegistrationForm) readSubjects(subjects []string) ([]string, error) {
	fmt.Fprintln(f.stdoutWriter, "Subjects for your class:")
	for i, subject := range subjects {
		fmt.Fprintf(f.stdoutWriter, "  %d: %s\n", i+1, subject)
	}

	answer, err := f.readLine("Pick subjects by number (empty keeps all): ")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return subjects, nil
	}

	var picked []string
	for _, token := range strings.Split(answer, ",") {
		index, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || index < 1 || index > len(subjects) {
			return nil, fmt.Errorf("invalid subject choice %q", strings.TrimSpace(token))
		}
		picked = append(picked, subjects[index-1])
	}
	return picked, nil
}

func boardOptions() []string {
	options := make([]string, len(student.Boards))
	for i, board := range student.Boards {
		options[i] = string(board)
	}
	return options
}

func streamOptions() []string {
	options := make([]string, len(student.Streams))
	for i, stream := range student.Streams {
		options[i] = string(stream)
	}
	return options
}
