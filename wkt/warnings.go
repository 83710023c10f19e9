package wkt

import (
	"fmt"
	"sort"
	"strings"
)

// Message is one non-fatal issue collected while parsing or formatting.
type Message struct {
	Text  string
	Cause error
}

// Warnings accumulates the non-fatal issues of a single parse or format
// call: unrecognized element keywords, minor value conversion problems, or
// the diagnostic of a lenient formatting of a non-standard object.
//
// A Warnings value is only valid until the next call on the Format that
// produced it, unless it has been published by Format.Warnings.
type Warnings struct {
	root      any
	ignored   map[string][]string
	messages  []Message
	published bool
}

// Root returns the object that was parsed or formatted, if any.
func (w *Warnings) Root() any {
	return w.root
}

// IgnoredElements maps each unrecognized keyword to the keywords of the
// elements that contained it, for locating the ignored element.
func (w *Warnings) IgnoredElements() map[string][]string {
	return w.ignored
}

// Messages returns the collected warning messages.
func (w *Warnings) Messages() []Message {
	return w.messages
}

// IsEmpty reports whether the warnings carry no information.
func (w *Warnings) IsEmpty() bool {
	return w == nil || (len(w.ignored) == 0 && len(w.messages) == 0)
}

func (w *Warnings) add(text string, cause error) {
	w.messages = append(w.messages, Message{Text: text, Cause: cause})
}

// publish detaches the warnings from parser-owned state so that the value
// stays valid after the next parse starts.
func (w *Warnings) publish() {
	if w.published {
		return
	}
	w.published = true
	ignored := make(map[string][]string, len(w.ignored))
	for k, v := range w.ignored {
		ignored[k] = append([]string(nil), v...)
	}
	w.ignored = ignored
}

// String renders every warning on its own line.
func (w *Warnings) String() string {
	var sb strings.Builder
	for _, m := range w.messages {
		sb.WriteString(m.Text)
		if m.Cause != nil {
			fmt.Fprintf(&sb, ": %v", m.Cause)
		}
		sb.WriteByte('\n')
	}
	keywords := make([]string, 0, len(w.ignored))
	for k := range w.ignored {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	for _, k := range keywords {
		fmt.Fprintf(&sb, "the WKT contains an unknown element %q in %s\n",
			k, strings.Join(w.ignored[k], ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
