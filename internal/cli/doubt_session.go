package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/edumate-ai/edumate/internal/inference"
	"github.com/edumate-ai/edumate/internal/student"
)

// DoubtCLI manages the interactive chat with the doubt solver.
type DoubtCLI struct {
	*InteractiveCLI
	client     inference.Client
	profile    student.Profile
	transcript []string
}

func NewDoubtCLI(client inference.Client, profile student.Profile) *DoubtCLI {
	return &DoubtCLI{
		InteractiveCLI: newInteractiveCLI(),
		client:         client,
		profile:        profile,
	}
}

func (r *DoubtCLI) Session(ctx context.Context) error {
	question, err := r.readLine("Doubt: ")
	if err != nil {
		return err
	}

	if question == "quit" || question == "exit" {
		fmt.Fprintln(r.stdoutWriter, "Doubt session ended.")
		return errEnd
	}
	if question == "" {
		return nil
	}

	response, err := r.client.SolveDoubt(ctx, inference.SolveDoubtRequest{
		Question: question,
		History:  strings.Join(r.transcript, "\n"),
		Profile:  r.profile,
	})
	if err != nil {
		return fmt.Errorf("client.SolveDoubt() > %w", err)
	}

	_, _ = r.bold.Fprint(r.stdoutWriter, "Tutor: ")
	fmt.Fprintln(r.stdoutWriter, response.Answer)
	fmt.Fprintln(r.stdoutWriter)

	r.transcript = append(r.transcript,
		"Student: "+question,
		"Tutor: "+response.Answer,
	)
	return nil
}
