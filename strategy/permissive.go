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

// Package strategy provides the pluggable numeral-parsing steps the
// builder selects from when assembling a line parser.
package strategy

import "dirpx.dev/segtab/apis"

// Permissive returns the numeral strategy of the original table format:
// the value is the longest leading run of decimal digits, and a token
// with no leading digits parses as zero. It never fails.
func Permissive() apis.Numeral {
	return permissive{}
}

type permissive struct{}

// Ensure permissive implements apis.Numeral.
var _ apis.Numeral = permissive{}

// ParseUint parses the leading decimal digits of tok. Overflow wraps.
func (permissive) ParseUint(tok string) (uint64, error) {
	var n uint64
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + uint64(c-'0')
	}
	return n, nil
}
