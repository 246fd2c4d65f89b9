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

// Package segtab compiles a line-oriented textual description of a
// logical block address space into a validated, gapless table of
// segments, and swaps the compiled table into an active slot shared with
// concurrent readers.
//
// Each line of the text describes one segment:
//
//	<start> <size> <target-type> <args...>
//
// start and size are unsigned decimal offsets/lengths, target-type names
// a handler registered on the device, and the rest of the line is handed
// verbatim to that handler's constructor. Fields are separated by runs
// of spaces and tabs; a trailing newline terminates a line; there are no
// comments and no continuations. For example:
//
//	0 100 linear /dev/sda 0
//	100 50 linear /dev/sdb 100
//	150 25 zero
//
// # Design
//
// The compilation pipeline is three stages, each its own package:
//
//   - scan reassembles discrete lines from a chunked byte source,
//     carrying partial lines across chunk boundaries in a fixed-capacity
//     buffer. The emitted lines are independent of how the input was
//     chunked. A line that outgrows the buffer kills the whole pass;
//     resynchronizing mid-line would risk parsing garbage.
//
//   - parser validates one line against the table built so far. The
//     table must be described in order with no gaps: every segment must
//     start exactly one past the previous segment's high bound, and the
//     first must start at zero. Target-type names resolve through the
//     device's registry, which counts uses so a target cannot be
//     unregistered while a parse holds it. A bad line produces one
//     (line, message) record and is skipped; the pass carries on.
//
//   - table owns the result. A building table is mutated by exactly one
//     pass; Complete freezes it. Complete tables are immutable and
//     reference counted: the active slot and every in-flight reader hold
//     one reference each, and the last release hands every segment's
//     context back to its target's destructor.
//
// A Device ties the stages together. Commit runs a full pass and, only
// if the whole stream parsed and produced a non-empty table, installs it:
//
//	dev := segtab.New()
//	_ = targets.RegisterBuiltins(dev.Registry())
//	errs, err := dev.Commit(scan.Reader(f, 0))
//
// Line errors accumulate in errs but do not prevent the install; they
// describe the lines that were skipped. A hard failure (overlong line,
// source not ready, empty result) returns err != nil and leaves the
// previously installed table active and untouched.
//
// # Concurrency model
//
// Writers are serialized: a per-device mutex admits one parse/install at
// a time. Readers acquire the active table with Device.Table (bumping
// its reference count) and release it with Put when done; Device.Find
// does the acquire/resolve/release dance for a single offset lookup.
// Because a reader's reference pins the table it acquired, installing a
// new table never disrupts reads in flight on the old one; the old table
// is destroyed when its last holder lets go.
//
// A parse pass itself is synchronous and single-threaded; concurrency
// only ever arises around the shared active slot.
//
// # Target types
//
// A target type is a named constructor/destructor pair (apis.Target)
// owning an opaque per-segment context. Constructors see the verbatim
// argument tail of their line and may reject it; the parser then records
// a line error and rolls the segment back. The targets package carries
// the stock types (linear, zero, error); processes embedding segtab
// register their own alongside.
//
// # Scope
//
// segtab is intentionally small. It compiles and publishes tables; it
// does not do I/O against the devices the segments describe, nor does it
// persist tables anywhere. The text is the only durable form.
package segtab
