// Package ui holds the small terminal building blocks shared by the views:
// prompts, transient notices, and the wall clock.
package ui

import (
	"fmt"
	"io"
)

// Notifier prints transient, per-action notices. Every failure is surfaced
// exactly once; nothing is retried behind the user's back.
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Success reports a completed action.
func (n *Notifier) Success(msg string) {
	fmt.Fprintf(n.out, "  ✔ %s\n", msg)
}

// Error reports a failed action.
func (n *Notifier) Error(msg string) {
	fmt.Fprintf(n.out, "  ✘ %s\n", msg)
}

// Info reports a neutral notice.
func (n *Notifier) Info(msg string) {
	fmt.Fprintf(n.out, "  • %s\n", msg)
}
