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

package config

import (
	"github.com/rs/zerolog"

	"dirpx.dev/segtab/apis"
)

const (
	// DefaultMaxLineBytes represents the default for MaxLineBytes.
	// One page minus a byte, the carry-buffer capacity of the original
	// table format.
	DefaultMaxLineBytes = 4095

	// DefaultStrictNumerals represents the default for StrictNumerals.
	// When false, malformed numerals silently parse to zero.
	DefaultStrictNumerals = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxLineBytes is valid.
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = DefaultMaxLineBytes
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxLineBytes:   DefaultMaxLineBytes,
		StrictNumerals: DefaultStrictNumerals,
		Logger:         zerolog.Nop(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxLineBytes sets the MaxLineBytes option.
// A non-positive value resets to the default.
func WithMaxLineBytes(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxLineBytes = DefaultMaxLineBytes
			return
		}
		c.MaxLineBytes = max
	}
}

// WithStrictNumerals sets the StrictNumerals option.
func WithStrictNumerals(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictNumerals = strict
	}
}

// WithLogger sets the Logger option.
func WithLogger(l zerolog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
