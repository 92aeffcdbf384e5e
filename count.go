package classics

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

type FileInfo struct {
	Lines uint64
	Words uint64
	Bytes uint64
	Chars uint64
}

func (f FileInfo) Add(other FileInfo) FileInfo {
	f.Lines += other.Lines
	f.Words += other.Words
	f.Bytes += other.Bytes
	f.Chars += other.Chars
	return f
}

// CountLines reads r one line at a time until a read returns no data.
func CountLines(r io.Reader) (FileInfo, error) {
	var (
		info FileInfo
		rs   = asLineReader(r)
	)
	for {
		line, err := rs.ReadBytes('\n')
		if len(line) > 0 {
			info.Lines++
			info.Words += uint64(len(bytes.Fields(line)))
			info.Bytes += uint64(len(line))
			info.Chars += uint64(utf8.RuneCount(line))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return info, nil
			}
			return info, err
		}
	}
}

// Counter prints one row of counts per input and a total row when more than
// one input is given.
type Counter struct {
	Lines bool
	Words bool
	Bytes bool
	Chars bool

	total FileInfo
}

// DefaultCounter shows lines, words and bytes.
func DefaultCounter() *Counter {
	return &Counter{
		Lines: true,
		Words: true,
		Bytes: true,
	}
}

func (c *Counter) Filter(w io.Writer, src *Source) error {
	if c.Bytes && c.Chars {
		return ErrConflict
	}
	info, err := CountLines(src)
	if err != nil {
		return err
	}
	c.total = c.total.Add(info)
	return c.print(w, info, src.Input.Label())
}

func (c *Counter) Finish(w io.Writer, inputs []Input) error {
	if len(inputs) <= 1 {
		return nil
	}
	return c.print(w, c.total, "total")
}

func (c *Counter) Total() FileInfo {
	return c.total
}

func (c *Counter) print(w io.Writer, info FileInfo, suffix string) error {
	row := FormatRow(
		FormatValue(info.Lines, c.Lines),
		FormatValue(info.Words, c.Words),
		FormatValue(info.Bytes, c.Bytes),
		FormatValue(info.Chars, c.Chars),
		suffix,
	)
	_, err := fmt.Fprintln(w, row)
	return err
}

type lineReader interface {
	ReadBytes(byte) ([]byte, error)
}

func asLineReader(r io.Reader) lineReader {
	if rs, ok := r.(lineReader); ok {
		return rs
	}
	return bufio.NewReader(r)
}
