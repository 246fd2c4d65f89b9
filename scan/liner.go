/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package scan reassembles complete lines from a sequence of byte chunks
// and provides chunk-source adapters for common inputs.
package scan

import (
	"bytes"
	"errors"

	"dirpx.dev/segtab/config"
)

// ErrLineTooLong is returned when a line reaches the carry-buffer
// capacity before a newline. It is fatal for the whole parse pass: there
// is no resynchronization at the next newline.
var ErrLineTooLong = errors.New("segtab(scan): line exceeds carry buffer capacity")

// Liner turns a sequence of byte chunks into a sequence of complete
// lines, carrying a partial line across chunk boundaries. The emitted
// lines are independent of how the input was chunked.
//
// A trailing partial line with no terminating newline is never emitted.
type Liner struct {
	// buf carries the current partial line across Feed calls.
	buf []byte
	// max caps the line length, newline excluded.
	max int
}

// New returns a Liner whose lines may be at most max-1 bytes long,
// newline excluded. A non-positive max selects the default capacity.
func New(max int) *Liner {
	if max <= 0 {
		max = config.DefaultMaxLineBytes
	}
	return &Liner{max: max}
}

// Feed appends chunk to the carried bytes and calls emit once per
// completed line, newline stripped. Bytes after the last newline are
// retained for the next call. If the carried bytes would reach the
// capacity before a newline, Feed returns ErrLineTooLong and the Liner
// must not be fed again.
func (l *Liner) Feed(chunk []byte, emit func(line string)) error {
	for len(chunk) > 0 {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			if len(l.buf)+len(chunk) >= l.max {
				return ErrLineTooLong
			}
			l.buf = append(l.buf, chunk...)
			return nil
		}
		if len(l.buf)+i >= l.max {
			return ErrLineTooLong
		}
		if len(l.buf) > 0 {
			l.buf = append(l.buf, chunk[:i]...)
			emit(string(l.buf))
			l.buf = l.buf[:0]
		} else {
			emit(string(chunk[:i]))
		}
		chunk = chunk[i+1:]
	}
	return nil
}

// Pending returns the number of carried bytes awaiting a newline.
func (l *Liner) Pending() int { return len(l.buf) }
