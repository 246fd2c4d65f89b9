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

package strategy

import (
	"errors"
	"strconv"

	"dirpx.dev/segtab/apis"
)

// ErrBadNumeral is returned by the strict strategy for tokens that are
// not pure unsigned decimal numerals.
var ErrBadNumeral = errors.New("segtab(strategy): malformed unsigned numeral")

// Strict returns a numeral strategy that rejects malformed tokens
// instead of letting them parse to zero. Selecting it changes observable
// behavior relative to the original format: affected lines produce line
// errors rather than silent zeros.
func Strict() apis.Numeral {
	return strict{}
}

type strict struct{}

// Ensure strict implements apis.Numeral.
var _ apis.Numeral = strict{}

// ParseUint parses tok as a full unsigned decimal numeral.
func (strict) ParseUint(tok string) (uint64, error) {
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, ErrBadNumeral
	}
	return n, nil
}
