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

import "github.com/rs/zerolog"

// Config carries read-only compilation knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxLineBytes caps the length of a single table line, newline
	// excluded. A line reaching this many bytes without a newline aborts
	// the whole parse pass.
	MaxLineBytes int

	// StrictNumerals selects the strict numeral strategy: malformed
	// start/size fields become line errors instead of silently parsing
	// to zero.
	StrictNumerals bool

	// Logger receives structured diagnostics for table installs and
	// discarded parses. Defaults to a nop logger.
	Logger zerolog.Logger
}
