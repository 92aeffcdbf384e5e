package classics

import (
	"bytes"
	"errors"
	"io"
)

type NumberMode int8

const (
	NumberNone NumberMode = iota
	NumberAll
	NumberNonBlank
)

// Numberer copies its input, optionally prefixing lines with their number.
type Numberer struct {
	Mode    NumberMode
	Squeeze bool
}

func (n Numberer) Filter(w io.Writer, src *Source) error {
	var (
		count int
		blank bool
	)
	for {
		line, err := src.ReadBytes('\n')
		if len(line) > 0 {
			empty := len(trimEOL(line)) == 0
			if n.Squeeze && empty && blank {
				continue
			}
			blank = empty
			if n.numbered(empty) {
				count++
				if _, err := io.WriteString(w, formatNumber(count)); err != nil {
					return err
				}
			}
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
}

func (n Numberer) numbered(empty bool) bool {
	switch n.Mode {
	case NumberAll:
		return true
	case NumberNonBlank:
		return !empty
	default:
		return false
	}
}

// trimEOL strips one trailing "\n" or "\r\n".
func trimEOL(line []byte) []byte {
	n, ok := bytes.CutSuffix(line, []byte{'\n'})
	if !ok {
		return line
	}
	return bytes.TrimSuffix(n, []byte{'\r'})
}
