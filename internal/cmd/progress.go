package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// progressUI wraps a go-pretty progress writer around a single tracker for
// the hashing run. A nil progressUI is valid and does nothing, so callers
// never have to branch on whether the indicator is enabled.
type progressUI struct {
	writer  progress.Writer
	tracker *progress.Tracker
}

// startProgress begins rendering a completed-out-of-total tracker on stderr.
func startProgress(total int, algorithm string) *progressUI {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.SetStyle(progress.StyleDefault)

	tracker := &progress.Tracker{
		Message: fmt.Sprintf("Computing %s hashes", algorithm),
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(tracker)
	go pw.Render()

	return &progressUI{writer: pw, tracker: tracker}
}

// Increment records one completed file.
func (p *progressUI) Increment() {
	if p == nil {
		return
	}
	p.tracker.Increment(1)
}

// Stop finishes the tracker and waits for the renderer to flush its final
// frame before stdout output starts.
func (p *progressUI) Stop() {
	if p == nil {
		return
	}
	p.tracker.MarkAsDone()
	p.writer.Stop()
	for p.writer.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}
