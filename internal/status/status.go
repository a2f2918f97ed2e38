// Package status holds the single transient notice shown after an action.
package status

import "sync"

// Kind distinguishes success notices from failures.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a user-visible notice.
type Message struct {
	Text string
	Kind Kind
}

// Reporter keeps at most one current message. A new report replaces the
// previous one; there is no queue or history, matching the single
// message box in the UI.
type Reporter struct {
	mu      sync.Mutex
	current *Message
}

func NewReporter() *Reporter {
	return &Reporter{}
}

// Report replaces the current message.
func (r *Reporter) Report(msg Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &msg
}

// Success reports a success notice.
func (r *Reporter) Success(text string) {
	r.Report(Message{Text: text, Kind: KindSuccess})
}

// Error reports a failure notice.
func (r *Reporter) Error(text string) {
	r.Report(Message{Text: text, Kind: KindError})
}

// Clear empties the slot.
func (r *Reporter) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
}

// Current returns the active message, or nil when the slot is empty.
func (r *Reporter) Current() *Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil
	}
	cp := *r.current
	return &cp
}
