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

package apis

import "errors"

// ErrNotReady is returned by a Source whose backing store cannot supply
// the next chunk. It is a hard failure: the parse pass aborts and the
// previously installed table stays active.
var ErrNotReady = errors.New("segtab(apis): chunk source not ready")

// Source yields the configuration text as ordered, non-overlapping byte
// chunks. A returned chunk is valid until the next call to Next.
type Source interface {
	// Next returns the next chunk, or io.EOF once the text is exhausted.
	// Any other error aborts the parse pass.
	Next() ([]byte, error)
}
