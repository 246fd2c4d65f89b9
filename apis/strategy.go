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

// Numeral is a pluggable parsing step for the unsigned decimal fields of
// a table line. Implementations must be safe for concurrent use.
type Numeral interface {
	// ParseUint parses tok as an unsigned decimal numeral.
	ParseUint(tok string) (uint64, error)
}
