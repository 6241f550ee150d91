package remesa

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/avelarq/remesa/pkg/domain"
)

// Runner handles the interactive conversation loop using provided IO.
// This allows for easy testing and integration with different frontends
// (plain CLI, TUI, etc).
type Runner struct {
	Input     io.Reader
	Output    io.Writer
	SessionID string
	// Headless suppresses the interactive prompt, for piped input and tests.
	Headless bool
	// JSON switches IO to NDJSON: one output object per turn, input lines
	// either raw text or {"utterance": "..."}. Implies no prompt.
	JSON     bool
	Renderer ContentRenderer
}

// turnEvent is the NDJSON output emitted per turn in JSON mode.
type turnEvent struct {
	SessionID   string        `json:"sessionId"`
	Response    string        `json:"response"`
	ActionTaken domain.Action `json:"actionTaken"`
	Phase       domain.Phase  `json:"phase"`
	Ended       bool          `json:"ended"`
}

// ContentRenderer transforms the response before outputting it. This allows
// for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner with a fresh session ID. The caller must set
// Input and Output (typically os.Stdin and os.Stdout).
func NewRunner() *Runner {
	return &Runner{
		SessionID: uuid.NewString(),
	}
}

// Run drives the conversation until the transfer completes, is cancelled, or
// the input ends. The opening turn is an empty utterance so the engine greets
// first.
func (r *Runner) Run(ctx context.Context, svc *Service) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)

	if err := r.turn(ctx, svc, ""); err != nil {
		return err
	}

	for {
		if !r.Headless && !r.JSON {
			fmt.Fprint(r.Output, "> ")
		}
		text, err := lineReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// Graceful exit on EOF
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}
		input := strings.TrimSpace(text)
		if r.JSON {
			input = decodeUtterance(input)
		}

		if input == "exit" || input == "quit" {
			if !r.JSON {
				fmt.Fprintln(r.Output, "Bye!")
			}
			return nil
		}

		if err := r.turn(ctx, svc, input); err != nil {
			return err
		}

		state, err := svc.State(ctx, r.SessionID)
		if err != nil {
			return err
		}
		if state.Ended() {
			// Clear the finished session so reusing the ID starts a fresh
			// transfer.
			return svc.Reset(ctx, r.SessionID)
		}
	}
}

func (r *Runner) turn(ctx context.Context, svc *Service, utterance string) error {
	result, err := svc.ProcessTurn(ctx, r.SessionID, utterance)
	if err != nil {
		return fmt.Errorf("turn error: %w", err)
	}

	if r.JSON {
		return json.NewEncoder(r.Output).Encode(turnEvent{
			SessionID:   r.SessionID,
			Response:    result.Response,
			ActionTaken: result.Action,
			Phase:       result.State.Phase,
			Ended:       result.State.Ended(),
		})
	}

	output := result.Response
	if r.Renderer != nil {
		if rendered, rErr := r.Renderer(output); rErr == nil {
			output = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimSpace(output))
	return nil
}

// decodeUtterance accepts either a raw line or a {"utterance": "..."} object.
func decodeUtterance(line string) string {
	if !strings.HasPrefix(line, "{") {
		return line
	}
	var payload struct {
		Utterance string `json:"utterance"`
	}
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return line
	}
	return payload.Utterance
}
