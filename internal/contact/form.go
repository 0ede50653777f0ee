// Package contact holds the contact form state machine and the relays that
// deliver its messages.
package contact

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	applog "folio/internal/log"
	"folio/internal/notify"
	"folio/internal/validation"
)

// RevertAfter is how long the submitted state is shown before the form
// returns to idle.
const RevertAfter = 3 * time.Second

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("contact: submission already in progress")
	// ErrClosed is returned after the form has been closed.
	ErrClosed = errors.New("contact: form closed")
)

// State is the observable state of a Form.
type State int

const (
	Idle State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Input is what the visitor typed. Form names match the relay fields.
type Input struct {
	Name    string `form:"from_name" json:"from_name" validate:"required"`
	Email   string `form:"from_email" json:"from_email" validate:"required,email"`
	Message string `form:"message" json:"message" validate:"required"`
}

func (in Input) normalized() Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
}

// Validate checks the input without submitting it.
func (in Input) Validate() error {
	problems, err := validation.Struct(in.normalized())
	if err != nil {
		return err
	}
	if problems != nil {
		return &ValidationError{Fields: problems}
	}
	return nil
}

// Timer is the handle returned by an AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it through
// the adapter in defaultAfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func defaultAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option customises a Form.
type Option func(*Form)

// WithRevertAfter overrides RevertAfter.
func WithRevertAfter(d time.Duration) Option {
	return func(f *Form) {
		f.revertAfter = d
	}
}

// WithAfterFunc overrides the timer used for the automatic revert.
func WithAfterFunc(after AfterFunc) Option {
	return func(f *Form) {
		if after != nil {
			f.after = after
		}
	}
}

// WithTemplate sets the relay service and template identifiers.
func WithTemplate(serviceID, templateID string) Option {
	return func(f *Form) {
		f.serviceID = serviceID
		f.templateID = templateID
	}
}

// Form is the idle → submitting → submitted → idle state machine in front of a
// Relay. While submitting, further submissions are refused.
type Form struct {
	mu          sync.Mutex
	relay       Relay
	state       State
	timer       Timer
	after       AfterFunc
	revertAfter time.Duration
	serviceID   string
	templateID  string
	closed      bool
	generation  uint64

	listeners notify.Registry[State]
}

// NewForm returns an idle form delivering through relay.
func NewForm(relay Relay, opts ...Option) *Form {
	f := &Form{
		relay:       relay,
		after:       defaultAfterFunc,
		revertAfter: RevertAfter,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// RevertAfter is how long the submitted state lasts.
func (f *Form) RevertAfter() time.Duration {
	return f.revertAfter
}

// Subscribe registers fn for state changes.
func (f *Form) Subscribe(fn func(State)) func() {
	return f.listeners.Subscribe(fn)
}

// Submit validates in and hands it to the relay. It returns *ValidationError
// before any state change, ErrBusy while a call is outstanding and
// *RelayError when delivery fails, after which the form is idle again.
// The relay call is not cancelled when ctx is.
func (f *Form) Submit(ctx context.Context, in Input) error {
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return ErrClosed
	case f.state == Submitting:
		f.mu.Unlock()
		return ErrBusy
	}
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.state = Submitting
	f.generation++
	generation := f.generation
	msg := Message{
		FromName:   in.Name,
		FromEmail:  in.Email,
		Body:       in.Message,
		ServiceID:  f.serviceID,
		TemplateID: f.templateID,
	}
	f.mu.Unlock()
	f.listeners.Publish(Submitting)

	err := f.send(context.WithoutCancel(ctx), msg)

	f.mu.Lock()
	if err != nil {
		f.state = Idle
		f.mu.Unlock()
		applog.Error(ctx, "contact relay failed", "error", err)
		f.listeners.Publish(Idle)
		return &RelayError{Err: err}
	}
	f.state = Submitted
	if !f.closed {
		f.timer = f.after(f.revertAfter, func() { f.revert(generation) })
	}
	f.mu.Unlock()

	applog.Info(ctx, "contact message relayed", "from", in.Email)
	f.listeners.Publish(Submitted)
	return nil
}

func (f *Form) send(ctx context.Context, msg Message) (err error) {
	if f.relay == nil {
		return errors.New("no relay configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("relay panicked")
			applog.Error(ctx, "contact relay panicked", "panic", r)
		}
	}()
	return f.relay.Send(ctx, msg)
}

func (f *Form) revert(generation uint64) {
	f.mu.Lock()
	if f.closed || f.state != Submitted || f.generation != generation {
		f.mu.Unlock()
		return
	}
	f.state = Idle
	f.timer = nil
	f.mu.Unlock()

	f.listeners.Publish(Idle)
}

// Close stops the revert timer and drops subscribers. Later submissions
// return ErrClosed.
func (f *Form) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()

	f.listeners.Clear()
}
