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

// Table is the read-only view of a segment table under construction, as
// seen by target constructors.
type Table interface {
	// NextOffset returns the offset the next segment must start at: 0 for
	// an empty table, otherwise one past the last segment's high bound.
	NextOffset() uint64

	// Len returns the number of segments accepted so far.
	Len() int
}

// Sink is the mutable table surface the line parser appends into.
type Sink interface {
	Table

	// Add appends a segment ending at high (inclusive). The segment's low
	// bound is the table's current NextOffset.
	Add(high uint64, tgt Target, ctx Context) error
}

// LineError records one line-scoped parse failure. Line errors do not
// stop the pass; they accumulate in the parse outcome.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	// Msg is the diagnostic message.
	Msg string
}
