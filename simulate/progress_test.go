package simulate

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Basic(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 4, 2)

	tracker.Start()
	assert.True(t, tracker.started, "should be started")

	tracker.Complete(true)
	tracker.Complete(false)
	tracker.Complete(true)
	tracker.Complete(false)

	assert.Greater(t, tracker.Elapsed(), time.Duration(0))

	output := buf.String()
	assert.Contains(t, output, "2/4")
	assert.Contains(t, output, "4/4")
	assert.Contains(t, output, "found 2")
	assert.Contains(t, output, "100.0%")
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Complete(true)
	tracker.Finish()

	assert.Empty(t, buf.String(), "should not report before Start")
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 50)

	tracker.Start()
	tracker.Complete(false)
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "1/100")
	assert.Contains(t, output, "\n", "finish should print newline")
}

func TestProgressTracker_CapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 2, 0)

	tracker.Start()
	for i := 0; i < 5; i++ {
		tracker.Complete(false)
	}
	tracker.Finish()

	assert.NotContains(t, buf.String(), "3/2")
}
