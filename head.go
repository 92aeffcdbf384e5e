package classics

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const DefaultLines = 10

type HeaderMode int8

const (
	HeaderAuto HeaderMode = iota
	HeaderAlways
	HeaderNever
)

// Truncator prints the first Lines lines of its input, or the first Bytes
// bytes when Bytes is set.
type Truncator struct {
	Lines  int
	Bytes  int
	Header HeaderMode
}

func (t Truncator) Filter(w io.Writer, src *Source) error {
	if t.Lines > 0 && t.Bytes > 0 {
		return ErrConflict
	}
	if err := t.writeHeader(w, src); err != nil {
		return err
	}
	if t.Bytes > 0 {
		return t.readBytes(w, src)
	}
	return t.readLines(w, src)
}

func (t Truncator) writeHeader(w io.Writer, src *Source) error {
	switch t.Header {
	case HeaderNever:
		return nil
	case HeaderAuto:
		if src.Count <= 1 {
			return nil
		}
	}
	if src.Index > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "==> %s <==\n", src.Input)
	return err
}

func (t Truncator) readLines(w io.Writer, src *Source) error {
	limit := t.Lines
	if limit <= 0 {
		limit = DefaultLines
	}
	for i := 0; i < limit; i++ {
		line, err := src.ReadBytes('\n')
		if len(line) > 0 {
			if _, err := w.Write(line); err != nil {
				return err
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (t Truncator) readBytes(w io.Writer, src *Source) error {
	buf, err := io.ReadAll(io.LimitReader(src, int64(t.Bytes)))
	if err != nil {
		return err
	}
	text, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), buf)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
