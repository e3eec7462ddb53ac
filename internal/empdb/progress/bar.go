// Package progress provides a really simple progress bar for the bulk insert.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar wraps a progressbar.ProgressBar. A nil *Bar is valid and draws
// nothing.
type Bar struct {
	pb *progressbar.ProgressBar
}

// NewBar returns a bar of maxItems steps drawn on w.
func NewBar(w io.Writer, description string, maxItems int) *Bar {
	pb := progressbar.NewOptions(
		maxItems,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
	_ = pb.Set(0)

	return &Bar{pb: pb}
}

// Inc advances the bar by one step.
func (b *Bar) Inc() {
	if b == nil {
		return
	}
	_ = b.pb.Add(1)
}

// Finish fills the bar and releases it.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	_ = b.pb.Finish()
	_ = b.pb.Close()
}

// Exit stops the bar where it is and ends its line, for runs that fail
// before completion.
func (b *Bar) Exit() {
	if b == nil {
		return
	}
	_ = b.pb.Exit()
}
