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

// LineParser validates one line against the table built so far and, on
// success, appends the resulting segment to it.
type LineParser interface {
	// ParseLine parses the num'th line (1-based). It returns nil on
	// success or the line-scoped error; either way the pass continues
	// with the next line.
	ParseLine(t Sink, num int, line string) *LineError
}

// Builder composes a Registry and a LineParser from a Config.
// Implementations may migrate entries from previous instances, or ignore them.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate targets
	// from a previous registry.
	BuildRegistry(cfg Config, prev Registry) Registry

	// BuildParser constructs a LineParser resolving targets through reg.
	BuildParser(cfg Config, reg Registry) LineParser
}
