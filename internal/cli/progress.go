package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Progress renders an in-place "label: done/total" counter for one batch.
// It writes to stderr and stays silent when stderr is not a terminal.
type Progress struct {
	mu      sync.Mutex
	label   string
	done    int
	total   int
	out     io.Writer
	enabled bool
}

// NewProgress creates a progress counter for total items.
func NewProgress(label string, total int) *Progress {
	return &Progress{label: label, total: total, out: os.Stderr, enabled: isTerminal(os.Stderr)}
}

// Step records one finished item and refreshes the line.
func (p *Progress) Step() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done < p.total {
		p.done++
	}
	if !p.enabled || p.total <= 0 {
		return
	}
	fmt.Fprintf(p.out, "\r%s: %d/%d", p.label, p.done, p.total)
}

// Stop finalizes the line with a newline.
func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.total <= 0 {
		return
	}
	fmt.Fprintf(p.out, "\r%s: %d/%d\n", p.label, p.done, p.total)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
