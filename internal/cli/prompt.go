package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Prompter asks questions on a writer and reads single-line answers.
// Reads happen on a background pump so that a pending prompt can be abandoned
// when the context is cancelled (e.g. Ctrl+C while waiting for input).
type Prompter struct {
	Reader *bufio.Reader
	Writer io.Writer

	lines     chan inputResult
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewPrompter creates a prompter over r and w, defaulting to Stdin and Stdout.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &Prompter{
		Reader: bufio.NewReader(r),
		Writer: w,
		done:   make(chan struct{}),
	}
}

// Close releases the input pump. A read already blocked on the underlying
// reader finishes on its own, but its line is dropped.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

func (p *Prompter) initPump() {
	p.startOnce.Do(func() {
		p.lines = make(chan inputResult, 1)
		go p.pump()
	})
}

func (p *Prompter) pump() {
	defer close(p.lines)
	for {
		text, err := p.Reader.ReadString('\n')

		// A final line without a newline still counts.
		if text != "" && !p.send(inputResult{text: text}) {
			return
		}

		if err != nil {
			if err != io.EOF {
				p.send(inputResult{err: err})
			}
			return
		}
	}
}

// send hands a result to Ask, giving up once the prompter is closed.
func (p *Prompter) send(res inputResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.done:
		return false
	}
}

// Ask prints prompt and returns the trimmed, sanitized answer.
// Lines rejected by SanitizeInput are reported and the prompt is repeated.
// It returns ctx.Err() if the context is cancelled and io.EOF once input is
// exhausted or the prompter is closed.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-p.done:
			return "", io.EOF
		default:
			fmt.Fprint(p.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-p.done:
			return "", io.EOF
		case res, ok := <-p.lines:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", fmt.Errorf("input error: %w", res.err)
			}

			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(p.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return strings.TrimSpace(clean), nil
		}
	}
}

// Confirm asks a yes/no question. Only "y" (any case) counts as yes.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := p.Ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
