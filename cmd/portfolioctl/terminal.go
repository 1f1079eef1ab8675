package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
)

type notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func (n *notifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, "✓", msg)
}

func (n *notifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, "✗", msg)
}

// confirmer asks a y/N question on the terminal. Anything but y or yes
// is a no.
type confirmer struct {
	in  *bufio.Reader
	out io.Writer
	yes bool
}

func (c *confirmer) Confirm(prompt string) bool {
	if c.yes {
		return true
	}
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	answer, _ := readLine(c.in)
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseAssignments reads key=value pairs from --set flags.
func parseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		out[k] = strings.ReplaceAll(v, `\n`, "\n")
	}
	return out, nil
}
