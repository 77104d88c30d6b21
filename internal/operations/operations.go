package operations

import (
	"io"
	"os"
	"time"

	"github.com/kebairia/keepass-backup/internal/config"
	"github.com/kebairia/keepass-backup/internal/logger"
)

// Option lets you override default collaborators on an Operator.
type Option func(*Operator)

// Operator runs the backup sequence once.
type Operator struct {
	cfg     config.Config
	workDir string
	clock   func() time.Time
	sleep   func(time.Duration)
	out     io.Writer
	log     logger.Logger
}

// NewOperator returns an Operator anchored at workDir. Relative directory
// chains in cfg are descended from workDir, which is expected to be the
// user's documents folder (the "start in" directory of the startup shortcut).
func NewOperator(cfg config.Config, workDir string, opts ...Option) *Operator {
	op := &Operator{
		cfg:     cfg,
		workDir: workDir,
		clock:   time.Now,
		sleep:   time.Sleep,
		out:     os.Stdout,
		log:     logger.Global(),
	}
	for _, opt := range opts {
		opt(op)
	}
	return op
}

// WithClock overrides the source of the current time.
func WithClock(clock func() time.Time) Option {
	return func(op *Operator) {
		if clock != nil {
			op.clock = clock
		}
	}
}

// WithSleep overrides how the operator pauses.
func WithSleep(sleep func(time.Duration)) Option {
	return func(op *Operator) {
		if sleep != nil {
			op.sleep = sleep
		}
	}
}

// WithOutput overrides where user-facing messages are printed.
func WithOutput(w io.Writer) Option {
	return func(op *Operator) {
		if w != nil {
			op.out = w
		}
	}
}

// WithLogger overrides the diagnostic logger.
func WithLogger(log logger.Logger) Option {
	return func(op *Operator) {
		if log != nil {
			op.log = log
		}
	}
}
