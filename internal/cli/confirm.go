package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirmer asks yes/no questions on a terminal, respecting context
// cancellation so an interrupt during a prompt aborts cleanly.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a confirmer reading from in and writing to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt and waits for a y/N answer. Anything other
// than an explicit yes declines; declining leaves state untouched at the
// caller.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s (y/N): ", prompt)

	type result struct {
		err  error
		line string
	}
	ch := make(chan result, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInputCancelled
	case res := <-ch:
		if res.err != nil && res.line == "" {
			return false, res.err
		}
		answer := strings.ToLower(strings.TrimSpace(res.line))
		return answer == "y" || answer == "yes", nil
	}
}
