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

package parser

import "dirpx.dev/segtab/apis"

// Errors is the append-only error log of one parse attempt. It is
// attached to the parse outcome, never to the installed table, and stays
// queryable whether or not the pass installed anything.
type Errors []apis.LineError

// Add appends one record.
func (e *Errors) Add(line int, msg string) {
	*e = append(*e, apis.LineError{Line: line, Msg: msg})
}

// Collect appends le if it is non-nil.
func (e *Errors) Collect(le *apis.LineError) {
	if le != nil {
		*e = append(*e, *le)
	}
}
