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

package segtab

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"dirpx.dev/segtab/apis"
	"dirpx.dev/segtab/builder"
	"dirpx.dev/segtab/config"
	"dirpx.dev/segtab/parser"
	"dirpx.dev/segtab/resolver"
	"dirpx.dev/segtab/scan"
	"dirpx.dev/segtab/table"
)

// Device compiles and serves the segment table of one configuration
// object. It starts with no table; Commit installs one, and readers keep
// whatever table they acquired until they release it, even across later
// installs.
type Device struct {
	cfg apis.Config
	bld apis.Builder
	reg apis.Registry

	// commitMu serializes parse/install passes: at most one per device.
	commitMu sync.Mutex

	// slotMu guards the active slot. Writers take it exclusively for the
	// swap; readers take it shared just long enough to bump the table's
	// reference count.
	slotMu sync.RWMutex
	active *table.Table // holds one reference while installed; nil when none
}

// New constructs a Device with an empty target registry and no table.
func New(opts ...config.Option) *Device {
	cfg := config.NewConfig(opts...)
	b := builder.New()
	return &Device{
		cfg: cfg,
		bld: b,
		reg: b.BuildRegistry(cfg, nil),
	}
}

// Config returns the device configuration.
func (d *Device) Config() apis.Config { return d.cfg }

// Registry returns the device's target registry. Targets must be
// registered here before a Commit can reference them.
func (d *Device) Registry() apis.Registry { return d.reg }

// Commit runs a full parse pass over src and, on success, atomically
// replaces the active table. The previous table is released only after
// the swap, so in-flight readers are unaffected.
//
// The returned slice holds the line-scoped errors of the pass in order;
// it is populated whether or not the install happened. A nil error means
// a table was installed (possibly alongside line errors). A non-nil
// error means a hard failure: the partial table was destroyed and the
// previously active table, if any, remains installed unchanged.
func (d *Device) Commit(src apis.Source) ([]apis.LineError, error) {
	d.commitMu.Lock()
	defer d.commitMu.Unlock()

	t := table.New()
	errs, err := d.parse(t, src)
	if err == nil {
		err = t.Complete()
	}
	if err != nil {
		t.Put()
		d.cfg.Logger.Error().Err(err).
			Int("line_errors", len(errs)).
			Msg("segtab: parse failed, previous table kept")
		return errs, err
	}

	d.slotMu.Lock()
	old := d.active
	d.active = t
	d.slotMu.Unlock()
	if old != nil {
		old.Put()
	}

	d.cfg.Logger.Debug().
		Int("segments", t.Len()).
		Int("line_errors", len(errs)).
		Msg("segtab: table installed")
	return errs, nil
}

// parse drives Source -> Liner -> LineParser into t and collects line
// errors. A returned error is a hard failure for the whole pass.
func (d *Device) parse(t *table.Table, src apis.Source) ([]apis.LineError, error) {
	liner := scan.New(d.cfg.MaxLineBytes)
	lp := d.bld.BuildParser(d.cfg, d.reg)

	var errs parser.Errors
	num := 0
	emit := func(line string) {
		num++
		errs.Collect(lp.ParseLine(t, num, line))
	}

	for {
		chunk, err := src.Next()
		if errors.Is(err, io.EOF) {
			return errs, nil
		}
		if err != nil {
			return errs, fmt.Errorf("segtab: chunk source failed: %w", err)
		}
		if err := liner.Feed(chunk, emit); err != nil {
			// The overlong line is still on record before the pass dies.
			errs.Add(num+1, parser.MsgLineTooLong)
			return errs, err
		}
	}
}

// Table acquires the currently active table, or nil when none is
// installed. The caller must release the returned table with Put; until
// then it stays valid even if a newer table is installed.
func (d *Device) Table() *table.Table {
	d.slotMu.RLock()
	defer d.slotMu.RUnlock()
	if d.active == nil {
		return nil
	}
	return d.active.Get()
}

// Find resolves off against the active table. It reports false when no
// table is installed or off lies past the last segment.
func (d *Device) Find(off uint64) (table.Segment, bool) {
	t := d.Table()
	if t == nil {
		return table.Segment{}, false
	}
	defer t.Put()
	return resolver.New(t).Resolve(off)
}

// Close releases the device's reference to the active table and leaves
// the device with no table. Readers still holding a reference keep it.
func (d *Device) Close() {
	d.slotMu.Lock()
	old := d.active
	d.active = nil
	d.slotMu.Unlock()
	if old != nil {
		old.Put()
	}
}
