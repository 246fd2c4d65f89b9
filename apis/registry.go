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

// Registry resolves target-type names to Targets and tracks per-entry use
// counts. It must be safe under concurrent use by independent parses.
//
// Get and Put form a balanced pair: every successful Get must be matched
// by exactly one Put on every code path, success or failure, before the
// calling frame exits. The use count is what keeps a target from being
// unregistered while a parse still holds it.
type Registry interface {
	// Register adds a target under its own name. It is idempotent for the
	// same target; re-registering a different target under an existing
	// name is a conflict.
	Register(tgt Target) error

	// Get returns the target registered under name and increments its use
	// count. "Not found" is the only failure mode.
	Get(name string) (Target, bool)

	// Put releases one use of tgt acquired via Get. Put of a nil or
	// unregistered target is a no-op.
	Put(tgt Target)

	// Unregister removes the target registered under name. It fails while
	// the target's use count is non-zero.
	Unregister(name string) error

	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Target

	// Count returns the number of registered targets.
	Count() int

	// Uses returns the current use count of the named target, 0 if unknown.
	Uses(name string) int

	// Reset clears all registered targets regardless of use counts.
	// Intended for tests.
	Reset()
}
