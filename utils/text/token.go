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

// Package text provides the low-level tokenization helper shared by the
// line parser and the built-in targets.
package text

// sep reports whether c separates tokens in a table line.
func sep(c byte) bool { return c == ' ' || c == '\t' }

// NextToken returns the first space/tab-delimited token of s and the
// remainder. Leading separator runs are skipped and the single separator
// byte following the token is consumed; any further separators stay in
// the remainder, which is otherwise passed on verbatim as the argument
// tail. An empty token means s holds no more tokens.
func NextToken(s string) (tok, rest string) {
	i := 0
	for i < len(s) && sep(s[i]) {
		i++
	}
	j := i
	for j < len(s) && !sep(s[j]) {
		j++
	}
	tok = s[i:j]
	if j < len(s) {
		j++ // the separator terminating the token
	}
	return tok, s[j:]
}
