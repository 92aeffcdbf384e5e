package classics

import (
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type DriverOption func(*Driver) error

func WithStdin(r io.Reader) DriverOption {
	return func(d *Driver) error {
		d.stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) DriverOption {
	return func(d *Driver) error {
		d.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) DriverOption {
	return func(d *Driver) error {
		d.stderr = w
		return nil
	}
}

func WithFs(fs afero.Fs) DriverOption {
	return func(d *Driver) error {
		d.fs = fs
		return nil
	}
}

func WithLogger(logger *zap.Logger) DriverOption {
	return func(d *Driver) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		d.logger = logger
		return nil
	}
}
