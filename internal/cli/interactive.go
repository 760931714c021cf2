package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// InteractiveCLI contains shared logic for interactive sessions
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

func newInteractiveCLI() *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}


type Session interface {
	Session(context context.Context) error
}

var (
	errEnd = errors.New("end")
)

func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

func (cli *InteractiveCLI) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(cli.stdoutWriter, prompt); err != nil {
		return "", fmt.Errorf("failed to write to stdout: %w", err)
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readChoice shows numbered options and keeps asking until one is picked.
func (cli *InteractiveCLI) readChoice(prompt string, options []string) (string, error) {
	for {
		if _, err := fmt.Fprintln(cli.stdoutWriter, prompt); err != nil {
			return "", fmt.Errorf("failed to write to stdout: %w", err)
		}
		for i, option := range options {
			if _, err := fmt.Fprintf(cli.stdoutWriter, "  %d: %s\n", i+1, option); err != nil {
				return "", fmt.Errorf("failed to write to stdout: %w", err)
			}
		}
		answer, err := cli.readLine("> ")
		if err != nil {
			return "", err
		}

		if index, convErr := strconv.Atoi(answer); convErr == nil {
			if index >= 1 && index <= len(options) {
				return options[index-1], nil
			}
		}
		for _, option := range options {
			if strings.EqualFold(answer, option) {
				return option, nil
			}
		}
		fmt.Fprintf(cli.stdoutWriter, "Please choose between 1 and %d.\n", len(options))
	}
}
