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

package builder

import (
	"dirpx.dev/segtab/apis"
	"dirpx.dev/segtab/parser"
	"dirpx.dev/segtab/registry"
	"dirpx.dev/segtab/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its targets are carried over into the new one.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, tgt := range prev.Entries() {
			_ = nreg.Register(tgt)
		}
	}
	return nreg
}

// BuildParser builds and returns a new apis.LineParser resolving target
// types through reg, with the numeral strategy the configuration selects.
func (b *builder) BuildParser(cfg apis.Config, reg apis.Registry) apis.LineParser {
	num := strategy.Permissive()
	if cfg.StrictNumerals {
		num = strategy.Strict()
	}
	return parser.New(reg, num)
}
