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

// Package targets carries the stock target types. They hold the
// per-segment parameters a block layer would route I/O with; segtab
// itself never performs that I/O.
package targets

import (
	"errors"
	"strconv"

	"dirpx.dev/segtab/apis"
	"dirpx.dev/segtab/utils/text"
)

var (
	// ErrNoDevice is returned by the linear constructor when the backing
	// device argument is missing.
	ErrNoDevice = errors.New("segtab(targets): linear: no device argument")
	// ErrBadOffset is returned by the linear constructor for a missing or
	// malformed backing offset.
	ErrBadOffset = errors.New("segtab(targets): linear: bad offset argument")
	// ErrTrailingArgs is returned by targets that take no arguments when
	// the line carries some anyway.
	ErrTrailingArgs = errors.New("segtab(targets): unexpected arguments")
)

// RegisterBuiltins registers the stock target types on reg.
func RegisterBuiltins(reg apis.Registry) error {
	for _, tgt := range []apis.Target{NewLinear(), NewZero(), NewError()} {
		if err := reg.Register(tgt); err != nil {
			return err
		}
	}
	return nil
}

// NewLinear returns the "linear" target type: the segment maps 1:1 onto
// a backing device starting at a fixed offset. Arguments:
//
//	<device> <offset>
func NewLinear() apis.Target { return linear{} }

type linear struct{}

// LinearContext is the constructed state of a linear segment.
type LinearContext struct {
	// Device is the backing device path.
	Device string
	// Offset is where the segment's low bound lands on the device.
	Offset uint64
}

func (linear) Name() string { return "linear" }

func (linear) Ctr(_ apis.Table, _, _ uint64, args string) (apis.Context, error) {
	dev, rest := text.NextToken(args)
	if dev == "" {
		return nil, ErrNoDevice
	}
	tok, _ := text.NextToken(rest)
	off, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return nil, ErrBadOffset
	}
	return &LinearContext{Device: dev, Offset: off}, nil
}

func (linear) Dtr(_ apis.Table, _ apis.Context) {}

// NewZero returns the "zero" target type: reads as zeros, writes are
// discarded. It takes no arguments.
func NewZero() apis.Target { return argless("zero") }

// NewError returns the "error" target type: all I/O on the segment
// fails. Useful to poison a known-bad range. It takes no arguments.
func NewError() apis.Target { return argless("error") }

// argless is a target with no constructor parameters and no context.
type argless string

func (a argless) Name() string { return string(a) }

func (a argless) Ctr(_ apis.Table, _, _ uint64, args string) (apis.Context, error) {
	if tok, _ := text.NextToken(args); tok != "" {
		return nil, ErrTrailingArgs
	}
	return nil, nil
}

func (a argless) Dtr(_ apis.Table, _ apis.Context) {}

// Compile-time interface checks.
var (
	_ apis.Target = linear{}
	_ apis.Target = argless("")
)
