package classics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Filter consumes one opened input and writes its output to w.
type Filter interface {
	Filter(w io.Writer, src *Source) error
}

// Finisher is implemented by filters that print something once every input
// has been processed.
type Finisher interface {
	Finish(w io.Writer, inputs []Input) error
}

type FilterFunc func(io.Writer, *Source) error

func (f FilterFunc) Filter(w io.Writer, src *Source) error {
	return f(w, src)
}

type Stats struct {
	Processed int
	Failed    int
}

type Driver struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
	fs     afero.Fs
	logger *zap.Logger
}

func NewDriver(options ...DriverOption) (*Driver, error) {
	d := Driver{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, o := range options {
		if err := o(&d); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// Run processes every input in order with the given filter. Inputs that can
// not be opened are reported on the error sink and skipped. Any error while
// reading an opened input stops the run.
func (d *Driver) Run(filter Filter, inputs []Input) (Stats, error) {
	var (
		stats Stats
		open  = NewOpener(d.fs, d.stdin)
	)
	if len(inputs) == 0 {
		return stats, ErrNoInput
	}
	for i, in := range inputs {
		src, err := open.Open(in)
		if err != nil {
			stats.Failed++
			d.logger.Warn("skip input", zap.Stringer("input", in), zap.Error(err))
			fmt.Fprintf(d.stderr, "%s: %s", in, describe(err))
			fmt.Fprintln(d.stderr)
			continue
		}
		src.Index = i
		src.Count = len(inputs)
		d.logger.Debug("open input", zap.Stringer("input", in), zap.Int("index", i))

		err = filter.Filter(d.stdout, src)
		src.Close()
		if err != nil {
			return stats, fmt.Errorf("%s: %w", in, err)
		}
		stats.Processed++
	}
	if f, ok := filter.(Finisher); ok {
		if err := f.Finish(d.stdout, inputs); err != nil {
			return stats, err
		}
	}
	d.logger.Debug("done", zap.Int("processed", stats.Processed), zap.Int("failed", stats.Failed))
	return stats, nil
}

func describe(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
