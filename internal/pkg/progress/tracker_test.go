package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingNotifier captures transitions for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	shows    []string
	updates  []int
	removals []string
	errors   []string
}

func (n *recordingNotifier) Show(id, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shows = append(n.shows, id)
}

func (n *recordingNotifier) Update(id string, percentage int, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updates = append(n.updates, percentage)
}

func (n *recordingNotifier) Success(id, message string) {}

func (n *recordingNotifier) Error(id, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, id)
}

func (n *recordingNotifier) Remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removals = append(n.removals, id)
}

func (n *recordingNotifier) removed() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.removals...)
}

func TestTracker_AutoCloseAfterCompletion(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(20*time.Millisecond))

	tracker.Create("upload-1", "Uploading loans.xlsx")
	tracker.UpdateProgress("upload-1", 100, "Finishing")

	state, ok := tracker.State("upload-1")
	assert.True(t, ok)
	assert.Equal(t, StateCompleting, state)

	time.Sleep(60 * time.Millisecond)

	_, ok = tracker.State("upload-1")
	assert.False(t, ok)
	assert.Equal(t, []string{"upload-1"}, notifier.removed())
}

func TestTracker_NoCloseTimerBelowHundred(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(10*time.Millisecond))

	tracker.Create("upload-1", "Uploading")
	tracker.UpdateProgress("upload-1", 45, "Uploading")
	tracker.UpdateProgress("upload-1", 45, "Uploading")

	time.Sleep(40 * time.Millisecond)

	state, ok := tracker.State("upload-1")
	assert.True(t, ok)
	assert.Equal(t, StateUploading, state)
	assert.Empty(t, notifier.removed())
}

func TestTracker_ProgressClearsPendingClose(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(50*time.Millisecond))

	// A fresh progress event below 100 must cancel the close scheduled at 100.
	tracker.Create("upload-1", "Uploading")
	tracker.UpdateProgress("upload-1", 100, "Finishing")
	tracker.UpdateProgress("upload-1", 80, "Retransmitting")

	time.Sleep(120 * time.Millisecond)

	state, ok := tracker.State("upload-1")
	assert.True(t, ok)
	assert.Equal(t, StateUploading, state)
}

func TestTracker_RemoveIsIdempotent(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(10*time.Millisecond))

	tracker.Create("upload-1", "Uploading")

	assert.NotPanics(t, func() {
		tracker.Remove("upload-1")
		tracker.Remove("upload-1")
	})
	assert.Equal(t, []string{"upload-1"}, notifier.removed())
	assert.Equal(t, 0, tracker.Active())
}

func TestTracker_SequentialUploadsNeverCloseEarly(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(20*time.Millisecond))

	tracker.Create("batch", "Uploading 3 files")
	tracker.UpdateProgress("batch", 33, "file 1 of 3")
	tracker.UpdateProgress("batch", 66, "file 2 of 3")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, notifier.removed())

	tracker.UpdateProgress("batch", 100, "file 3 of 3")
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"batch"}, notifier.removed())
}

func TestTracker_IndependentToasts(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(20*time.Millisecond))

	tracker.Create("a", "Uploading a")
	tracker.Create("b", "Uploading b")
	tracker.UpdateProgress("a", 100, "done")

	time.Sleep(60 * time.Millisecond)

	_, okA := tracker.State("a")
	stateB, okB := tracker.State("b")
	assert.False(t, okA)
	assert.True(t, okB)
	assert.Equal(t, StateCreated, stateB)
}

func TestTracker_MarkErrorSchedulesRemoval(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier, WithCloseDelay(20*time.Millisecond))

	tracker.Create("upload-1", "Uploading")
	tracker.UpdateProgress("upload-1", 50, "Uploading")
	tracker.MarkError("upload-1", "network failure")

	state, ok := tracker.State("upload-1")
	assert.True(t, ok)
	assert.Equal(t, StateFailed, state)

	time.Sleep(60 * time.Millisecond)
	_, ok = tracker.State("upload-1")
	assert.False(t, ok)
	assert.Equal(t, []string{"upload-1"}, notifier.errors)
}

func TestTracker_UnknownIDIsIgnored(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := NewTracker(notifier)

	assert.NotPanics(t, func() {
		tracker.UpdateProgress("ghost", 50, "nope")
		tracker.MarkSuccess("ghost", "nope")
		tracker.MarkError("ghost", "nope")
		tracker.Remove("ghost")
	})
}
