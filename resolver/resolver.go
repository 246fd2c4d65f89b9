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

// Package resolver answers "which segment owns this offset" against a
// compiled table.
package resolver

import "dirpx.dev/segtab/table"

// New constructs a Resolver over t. The resolver holds no table
// reference of its own; the caller keeps t alive for the resolver's
// lifetime, typically the span of one read.
func New(t *table.Table) Resolver {
	return Resolver{t: t}
}

// Resolver is an immutable view resolving absolute offsets to segments.
// It is safe for concurrent use over a complete table.
type Resolver struct {
	t *table.Table
}

// Resolve returns the segment containing off, or false when the table is
// absent or off lies beyond its last segment.
func (r Resolver) Resolve(off uint64) (table.Segment, bool) {
	if r.t == nil {
		return table.Segment{}, false
	}
	return r.t.Find(off)
}
