package app

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

// stepTimer prints numbered step lines and their elapsed time.
type stepTimer struct {
	out        io.Writer
	stepNum    int
	totalSteps int
	start      time.Time
}

func newStepTimer(out io.Writer, totalSteps int) *stepTimer {
	return &stepTimer{out: out, totalSteps: totalSteps}
}

func (t *stepTimer) step(name string) {
	t.stepNum++
	t.start = time.Now()
	titleColor.Fprintf(t.out, "\nStep %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
}

func (t *stepTimer) done(details ...string) {
	elapsed := time.Since(t.start).Round(time.Millisecond)
	successColor.Fprintf(t.out, "   ✓ Done (%s)\n", elapsed)
	for _, d := range details {
		dimColor.Fprintf(t.out, "   └── %s\n", d)
	}
}

func (t *stepTimer) info(format string, args ...any) {
	dimColor.Fprintf(t.out, "   ├── %s\n", fmt.Sprintf(format, args...))
}
