package stdio

import (
	"bufio"
	"io"
	"os"

	"github.com/midbel/rw"
	"github.com/spf13/afero"
)

// Writer buffers writes to an underlying sink until Flush or Close.
type Writer struct {
	*bufio.Writer
	inner io.Writer
}

func Buffer(w io.Writer) *Writer {
	return &Writer{
		Writer: bufio.NewWriter(w),
		inner:  w,
	}
}

// Create truncates or creates the named file and returns a buffered writer
// for it.
func Create(fs afero.Fs, name string) (*Writer, error) {
	f, err := fs.Create(name)
	if err != nil {
		return nil, err
	}
	return Buffer(f), nil
}

func (w *Writer) Unwrap() io.Writer {
	return w.inner
}

// Close flushes pending output and closes the underlying sink unless it is
// one of the standard streams.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if f, ok := unwrapFile(w); ok && isStandard(f) {
		return nil
	}
	if c, ok := w.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func unwrapFile(w io.Writer) (*os.File, bool) {
	u, ok := w.(rw.UnwrapWriter)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}

func isStandard(f *os.File) bool {
	return f == os.Stdout || f == os.Stderr
}
