package classics

import (
	"bytes"
	"errors"
	"io"
)

// Deduplicator collapses runs of adjacent identical lines. Lines that only
// differ by their terminator are identical.
type Deduplicator struct {
	Counts     bool
	Repeated   bool
	Unique     bool
	IgnoreCase bool
}

type dedupState struct {
	line []byte
	key  []byte
	run  int
}

func (d Deduplicator) Filter(w io.Writer, src *Source) error {
	var state dedupState
	for {
		line, err := src.ReadBytes('\n')
		if len(line) > 0 {
			key := d.key(line)
			if !bytes.Equal(key, state.key) || state.run == 0 {
				if err := d.flush(w, &state); err != nil {
					return err
				}
				state.line = line
				state.key = key
				state.run = 0
			}
			state.run++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return d.flush(w, &state)
			}
			return err
		}
	}
}

func (d Deduplicator) key(line []byte) []byte {
	key := trimEOL(line)
	if d.IgnoreCase {
		key = bytes.ToLower(key)
	}
	return key
}

func (d Deduplicator) flush(w io.Writer, state *dedupState) error {
	if state.run == 0 {
		return nil
	}
	defer func() {
		state.run = 0
	}()
	if d.Repeated && state.run < 2 {
		return nil
	}
	if d.Unique && state.run > 1 {
		return nil
	}
	if d.Counts {
		if _, err := io.WriteString(w, formatRun(state.run)); err != nil {
			return err
		}
	}
	_, err := w.Write(state.line)
	return err
}
