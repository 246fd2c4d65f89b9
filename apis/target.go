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

// Context is the opaque per-segment state produced by a Target's
// constructor. Its lifetime is bound to the segment that owns it: the
// table invokes the target's destructor exactly once when the segment is
// dropped, or the parser invokes it when construction is rolled back.
type Context any

// Target is a pluggable handler backing one kind of segment. A Target
// must be safe for concurrent constructor calls from independent parses.
type Target interface {
	// Name returns the token that selects this target in table lines.
	Name() string

	// Ctr constructs the per-segment context for a segment covering
	// begin..begin+length-1. args is the verbatim argument tail of the
	// table line; tokenizing it is the target's responsibility. t is a
	// read view of the table being built.
	Ctr(t Table, begin, length uint64, args string) (Context, error)

	// Dtr releases a context previously returned by Ctr.
	Dtr(t Table, ctx Context)
}
