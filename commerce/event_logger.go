package commerce

import (
	"fmt"
	"io"
	"strings"
)

// ANSI color codes
const (
	Blue    = "\033[94m"
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Cyan    = "\033[96m"
	Magenta = "\033[95m"
	Red     = "\033[91m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reset   = "\033[0m"
)

// EventDetail is one labelled line printed under an event header.
type EventDetail struct {
	Label string
	Value string
}

// LoggableEvent is an event that can describe itself for console output.
type LoggableEvent interface {
	EventType() string
	Details() []EventDetail
}

// DomainColor returns the color for a domain.
func DomainColor(domain string) string {
	switch domain {
	case "cart":
		return Blue
	case "orders":
		return Cyan
	default:
		return Magenta
	}
}

// EventColor returns the color for an event type.
func EventColor(eventType string) string {
	switch {
	case strings.Contains(eventType, "Added"), strings.Contains(eventType, "Applied"):
		return Green
	case strings.Contains(eventType, "Updated"):
		return Yellow
	case strings.Contains(eventType, "Removed"), strings.Contains(eventType, "Cleared"):
		return Red
	default:
		return ""
	}
}

// LogEvent writes a single event with pretty formatting.
func LogEvent(w io.Writer, domain, rootID string, sequence int, event LoggableEvent) {
	eventType := event.EventType()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s%s\n", Bold, strings.Repeat("─", 60), Reset)
	fmt.Fprintf(w, "%s%s[%s]%s %sseq:%d%s  %s%s%s\n",
		Bold, DomainColor(domain), strings.ToUpper(domain), Reset,
		Dim, sequence, Reset,
		Cyan, shortID(rootID), Reset)
	fmt.Fprintf(w, "%s%s%s%s\n", Bold, EventColor(eventType), eventType, Reset)
	fmt.Fprintln(w, strings.Repeat("─", 60))

	width := 0
	details := event.Details()
	for _, d := range details {
		if len(d.Label) > width {
			width = len(d.Label)
		}
	}
	for _, d := range details {
		pad := strings.Repeat(" ", width-len(d.Label))
		fmt.Fprintf(w, "  %s%s:%s %s%s\n", Dim, d.Label, Reset, pad, d.Value)
	}
}

func shortID(id string) string {
	if len(id) > 16 {
		return id[:16] + "..."
	}
	return id
}
