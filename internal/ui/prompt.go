package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive input line by line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints a label and reads one trimmed line.
func (p *Prompter) Line(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Password reads a line without echo when stdin is a terminal, falling back
// to a plain line read otherwise (tests, pipes).
func (p *Prompter) Password(label string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.Line(label)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Confirm shows a yes/no prompt and reports the answer. Anything but an
// explicit yes declines.
func (p *Prompter) Confirm(title, message string) bool {
	fmt.Fprintf(p.out, "\n%s\n%s [y/N]: ", title, message)
	if !p.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(p.in.Text()))
	return answer == "y" || answer == "yes"
}
