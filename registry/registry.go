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

package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/segtab/apis"
)

var (
	// ErrNilTarget is returned when a nil target is provided.
	ErrNilTarget = errors.New("segtab(registry): nil target provided")
	// ErrEmptyName is returned when a target reports an empty name.
	ErrEmptyName = errors.New("segtab(registry): empty target name")
	// ErrConflictingRegistration indicates an attempt to register a
	// different target under an already-taken name.
	ErrConflictingRegistration = errors.New("segtab(registry): conflicting target registration")
	// ErrUnknownTarget is returned by Unregister for a name that is not registered.
	ErrUnknownTarget = errors.New("segtab(registry): unknown target")
	// ErrTargetInUse is returned by Unregister while the target's use count is non-zero.
	ErrTargetInUse = errors.New("segtab(registry): target still in use")
)

// New constructs an empty target Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a use-counting Registry backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// m maps target name to *entry.
	m sync.Map // map[string]*entry
	// count tracks the number of registered targets.
	count int
}

// entry pairs a target with its use count. Lookups bump uses without
// taking the registry lock.
type entry struct {
	tgt  apis.Target
	uses atomic.Int64
}

// Register adds tgt under its own name.
// It is idempotent for the same target.
func (r *registry) Register(tgt apis.Target) error {
	// Validate inputs early.
	if tgt == nil {
		return ErrNilTarget
	}
	name := tgt.Name()
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(*entry).tgt == tgt {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if old.(*entry).tgt == tgt {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, &entry{tgt: tgt})
	r.count++
	return nil
}

// Get returns the target registered under name and increments its use count.
func (r *registry) Get(name string) (apis.Target, bool) {
	v, ok := r.m.Load(name)
	if !ok {
		return nil, false
	}
	e := v.(*entry)
	e.uses.Add(1)
	return e.tgt, true
}

// Put releases one use of tgt acquired via Get.
func (r *registry) Put(tgt apis.Target) {
	if tgt == nil {
		return
	}
	if v, ok := r.m.Load(tgt.Name()); ok {
		v.(*entry).uses.Add(-1)
	}
}

// Unregister removes the target registered under name.
// It fails while any parse still holds a use of the target.
func (r *registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.m.Load(name)
	if !ok {
		return ErrUnknownTarget
	}
	if v.(*entry).uses.Load() != 0 {
		return ErrTargetInUse
	}
	r.m.Delete(name)
	r.count--
	return nil
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Target {
	entries := make([]apis.Target, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(*entry).tgt)
		return true
	})
	return entries
}

// Count returns the number of registered targets.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Uses returns the current use count of the named target, 0 if unknown.
func (r *registry) Uses(name string) int {
	if v, ok := r.m.Load(name); ok {
		return int(v.(*entry).uses.Load())
	}
	return 0
}

// Reset clears all registered targets.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
