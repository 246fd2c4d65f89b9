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

package scan

import (
	"fmt"
	"io"

	"dirpx.dev/segtab/apis"
)

// DefaultChunkBytes is the chunk size used by Reader when none is given.
const DefaultChunkBytes = 4096

// Bytes returns a Source yielding the provided chunks in order. Useful
// for tests and for callers that already hold the text in memory.
func Bytes(chunks ...[]byte) apis.Source {
	return &bytesSource{chunks: chunks}
}

type bytesSource struct {
	chunks [][]byte
	i      int
}

func (s *bytesSource) Next() ([]byte, error) {
	if s.i == len(s.chunks) {
		return nil, io.EOF
	}
	c := s.chunks[s.i]
	s.i++
	return c, nil
}

// Reader returns a Source reading r in chunks of at most n bytes.
// A non-positive n selects DefaultChunkBytes.
func Reader(r io.Reader, n int) apis.Source {
	if n <= 0 {
		n = DefaultChunkBytes
	}
	return &readerSource{r: r, buf: make([]byte, n)}
}

type readerSource struct {
	r   io.Reader
	buf []byte
}

func (s *readerSource) Next() ([]byte, error) {
	for {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			return s.buf[:n], nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("segtab(scan): read failed: %w", err)
		}
	}
}
