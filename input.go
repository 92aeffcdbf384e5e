package classics

import (
	"bufio"
	"io"
	"os"

	"github.com/midbel/rw"
	"github.com/spf13/afero"
)

const stdinName = "-"

type InputKind int8

const (
	Standard InputKind = iota
	Named
)

// Input references a stream to read. The zero value is standard input.
type Input struct {
	Kind InputKind
	Path string
}

func Stdin() Input {
	return Input{Kind: Standard}
}

func File(path string) Input {
	return Input{Kind: Named, Path: path}
}

// ParseInput turns a command line argument into an Input: "-" is standard
// input, anything else is a path.
func ParseInput(str string) Input {
	if str == stdinName {
		return Stdin()
	}
	return File(str)
}

// ParseInputs parses every argument. An empty list yields standard input.
func ParseInputs(args []string) []Input {
	if len(args) == 0 {
		return []Input{Stdin()}
	}
	list := make([]Input, 0, len(args))
	for _, a := range args {
		list = append(list, ParseInput(a))
	}
	return list
}

func (i Input) IsStdin() bool {
	return i.Kind == Standard
}

// String returns the name as given on the command line.
func (i Input) String() string {
	if i.IsStdin() {
		return stdinName
	}
	return i.Path
}

// Label is the name shown in counter rows: empty for standard input.
func (i Input) Label() string {
	if i.IsStdin() {
		return ""
	}
	return i.Path
}

// Source is one opened input, read forward only.
type Source struct {
	*bufio.Reader
	Input Input
	Index int
	Count int

	inner io.Reader
}

func (s *Source) Unwrap() io.Reader {
	return s.inner
}

// Close releases the underlying file. Standard input is left open.
func (s *Source) Close() error {
	if s.Input.IsStdin() {
		return nil
	}
	if f, ok := unwrapFile(s); ok && f == os.Stdin {
		return nil
	}
	c, ok := s.inner.(io.Closer)
	if !ok {
		return nil
	}
	return c.Close()
}

func unwrapFile(r io.Reader) (*os.File, bool) {
	u, ok := r.(rw.UnwrapReader)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}

type Opener struct {
	fs    afero.Fs
	stdin io.Reader
}

func NewOpener(fs afero.Fs, stdin io.Reader) *Opener {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Opener{
		fs:    fs,
		stdin: stdin,
	}
}

func (o *Opener) Open(in Input) (*Source, error) {
	var r io.Reader = o.stdin
	if !in.IsStdin() {
		f, err := o.fs.Open(in.Path)
		if err != nil {
			return nil, err
		}
		if i, err := f.Stat(); err == nil && i.IsDir() {
			f.Close()
			return nil, &os.PathError{Op: "open", Path: in.Path, Err: ErrIsDir}
		}
		r = f
	}
	src := Source{
		Reader: bufio.NewReader(r),
		Input:  in,
		inner:  r,
	}
	return &src, nil
}
