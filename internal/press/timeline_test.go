package press

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimelineFiresInDueOrder checks that actions scheduled out of order run
// by due time and observe their own due instant as Now.
func TestTimelineFiresInDueOrder(t *testing.T) {
	tl := NewTimeline()
	var fired []time.Duration
	record := func() { fired = append(fired, tl.Now()) }

	tl.After(30*time.Millisecond, record)
	tl.After(10*time.Millisecond, record)
	tl.After(20*time.Millisecond, record)

	tl.Advance(50 * time.Millisecond)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, fired)
	assert.Equal(t, 50*time.Millisecond, tl.Now())
	assert.Zero(t, tl.Pending())
}

func TestTimelineTiesKeepScheduleOrder(t *testing.T) {
	tl := NewTimeline()
	var order []string
	tl.After(time.Second, func() { order = append(order, "a") })
	tl.After(time.Second, func() { order = append(order, "b") })

	tl.Advance(time.Second)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestTimelineCancel(t *testing.T) {
	tl := NewTimeline()
	fired := false
	h := tl.After(10*time.Millisecond, func() { fired = true })

	require.True(t, tl.Cancel(h))
	assert.False(t, tl.Cancel(h), "second cancel must report nothing pending")

	tl.Advance(time.Second)
	assert.False(t, fired)
}

// TestTimelineNestedSchedule checks that a callback scheduling a follow-up
// measures the delay from its own firing instant, within one Advance.
func TestTimelineNestedSchedule(t *testing.T) {
	tl := NewTimeline()
	var at time.Duration
	tl.After(10*time.Millisecond, func() {
		tl.After(5*time.Millisecond, func() { at = tl.Now() })
	})

	tl.Advance(100 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, at)
}

func TestTimelineNotYetDue(t *testing.T) {
	tl := NewTimeline()
	fired := false
	tl.After(100*time.Millisecond, func() { fired = true })

	tl.Advance(99 * time.Millisecond)
	assert.False(t, fired)
	assert.Equal(t, 1, tl.Pending())

	tl.Advance(time.Millisecond)
	assert.True(t, fired)
}
