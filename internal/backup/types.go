package backup

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Record describes a single completed backup run.
type Record struct {
	Label       string
	Source      string
	Destination string
	Bytes       int64
	StartedAt   time.Time
	Duration    time.Duration
}

// HumanSize renders Bytes with binary units, e.g. "1.5 KiB".
func (r Record) HumanSize() string {
	if r.Bytes < 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(r.Bytes))
}
