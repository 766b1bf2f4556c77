package progress

import (
	"sync"
	"time"
)

// State is a toast's position in its lifecycle:
// created -> uploading -> completing -> succeeded/failed -> removed.
type State string

const (
	StateCreated    State = "created"
	StateUploading  State = "uploading"
	StateCompleting State = "completing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// DefaultCloseDelay is how long a finished toast lingers before auto-removal,
// long enough for the user to perceive completion.
const DefaultCloseDelay = 300 * time.Millisecond

// Notifier renders toast transitions. The CLI supplies a terminal renderer;
// tests supply a recording fake.
type Notifier interface {
	Show(id, message string)
	Update(id string, percentage int, message string)
	Success(id, message string)
	Error(id, message string)
	Remove(id string)
}

type toast struct {
	state      State
	percentage int
	closeTimer *time.Timer
}

// Tracker manages the lifecycle of concurrent upload toasts, keyed by
// caller-chosen id. Toasts are independent; the registry lock is the only
// shared state.
type Tracker struct {
	mu         sync.Mutex
	notifier   Notifier
	closeDelay time.Duration
	toasts     map[string]*toast
}

type Option func(*Tracker)

// WithCloseDelay overrides the auto-close delay.
func WithCloseDelay(d time.Duration) Option {
	return func(t *Tracker) { t.closeDelay = d }
}

func NewTracker(notifier Notifier, opts ...Option) *Tracker {
	t := &Tracker{
		notifier:   notifier,
		closeDelay: DefaultCloseDelay,
		toasts:     make(map[string]*toast),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Create allocates and shows a toast.
func (t *Tracker) Create(id, message string) {
	t.mu.Lock()
	t.toasts[id] = &toast{state: StateCreated}
	t.mu.Unlock()

	t.notifier.Show(id, message)
}

// UpdateProgress records an upload percentage. Below 100 any pending
// auto-close timer is cleared so a toast is never dismissed mid-transfer;
// at 100 removal is scheduled after the close delay.
func (t *Tracker) UpdateProgress(id string, percentage int, message string) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	t.mu.Lock()
	tst, ok := t.toasts[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	tst.percentage = percentage
	if percentage < 100 {
		tst.state = StateUploading
		t.cancelCloseLocked(tst)
	} else {
		tst.state = StateCompleting
		t.scheduleCloseLocked(id, tst)
	}
	t.mu.Unlock()

	t.notifier.Update(id, percentage, message)
}

// MarkSuccess transitions the toast to its terminal success state and
// schedules removal.
func (t *Tracker) MarkSuccess(id, message string) {
	t.mu.Lock()
	tst, ok := t.toasts[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	tst.state = StateSucceeded
	t.scheduleCloseLocked(id, tst)
	t.mu.Unlock()

	t.notifier.Success(id, message)
}

// MarkError transitions the toast to its terminal error state and schedules
// removal. Error-report generation is the caller's concern; the tracker only
// manages lifecycle.
func (t *Tracker) MarkError(id, message string) {
	t.mu.Lock()
	tst, ok := t.toasts[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	tst.state = StateFailed
	t.scheduleCloseLocked(id, tst)
	t.mu.Unlock()

	t.notifier.Error(id, message)
}

// Remove detaches the toast. Idempotent; a second call is a no-op.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	tst, ok := t.toasts[id]
	if ok {
		t.cancelCloseLocked(tst)
		delete(t.toasts, id)
	}
	t.mu.Unlock()

	if ok {
		t.notifier.Remove(id)
	}
}

// State returns the toast's current state, if it is still registered.
func (t *Tracker) State(id string) (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tst, ok := t.toasts[id]
	if !ok {
		return "", false
	}
	return tst.state, true
}

// Percentage returns the toast's last reported percentage.
func (t *Tracker) Percentage(id string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tst, ok := t.toasts[id]
	if !ok {
		return 0, false
	}
	return tst.percentage, true
}

// Active returns the number of registered toasts.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.toasts)
}

func (t *Tracker) scheduleCloseLocked(id string, tst *toast) {
	t.cancelCloseLocked(tst)
	tst.closeTimer = time.AfterFunc(t.closeDelay, func() {
		t.Remove(id)
	})
}

func (t *Tracker) cancelCloseLocked(tst *toast) {
	if tst.closeTimer != nil {
		tst.closeTimer.Stop()
		tst.closeTimer = nil
	}
}
