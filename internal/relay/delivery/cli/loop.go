package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"wecom-relay/internal/message"
)

// Run reads one line at a time and sends it as a text message until
// exit/quit, end of input or ctx cancellation. Send failures are printed and
// the loop continues.
func (h *Handler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(h.in)
		for s.Scan() {
			select {
			case lines <- s.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- s.Err()
	}()

	h.l.Infof(ctx, "cli: prompt started")
	defer h.l.Infof(ctx, "cli: prompt closed")

	fmt.Fprintln(h.out, banner)
	for {
		fmt.Fprint(h.out, prompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(h.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(h.out)
			select {
			case err := <-readErr:
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			default:
			}
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			fmt.Fprintln(h.out, "Bye.")
			return nil
		}

		if err := h.uc.Send(ctx, message.Text(line)); err != nil {
			fmt.Fprintf(h.out, "Send failed: %v\n", err)
			continue
		}
		fmt.Fprintln(h.out, "Message sent.")
	}
}

func isExit(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}
