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

package registry_test

import (
	"testing"

	"dirpx.dev/segtab/apis"
	"dirpx.dev/segtab/registry"
)

// stubTarget is a minimal target for registry tests; its constructor
// produces no context.
type stubTarget struct{ name string }

func (s *stubTarget) Name() string { return s.name }

func (s *stubTarget) Ctr(_ apis.Table, _, _ uint64, _ string) (apis.Context, error) {
	return nil, nil
}

func (s *stubTarget) Dtr(_ apis.Table, _ apis.Context) {}

func TestRegister_IdempotentAndGet(t *testing.T) {
	reg := registry.New()
	lin := &stubTarget{name: "linear"}

	if err := reg.Register(lin); err != nil {
		t.Fatalf("Register(linear): unexpected error: %v", err)
	}
	// idempotent re-register of the same target
	if err := reg.Register(lin); err != nil {
		t.Fatalf("Register(linear) idempotent: unexpected error: %v", err)
	}

	got, ok := reg.Get("linear")
	if !ok || got != apis.Target(lin) {
		t.Fatalf("Get(linear): got (%v,%v), want (linear,true)", got, ok)
	}
	defer reg.Put(got)

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
	if uses := reg.Uses("linear"); uses != 1 {
		t.Fatalf("Uses(linear) = %d, want 1", uses)
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(&stubTarget{name: "linear"}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same name, different target -> conflict
	err := reg.Register(&stubTarget{name: "linear"})
	if err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(nil); err != registry.ErrNilTarget {
		t.Fatalf("nil target: want ErrNilTarget, got %v", err)
	}
	if err := reg.Register(&stubTarget{}); err != registry.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
}

func TestGet_UnknownName(t *testing.T) {
	reg := registry.New()
	if got, ok := reg.Get("striped"); ok || got != nil {
		t.Fatalf("Get(striped): got (%v,%v), want (nil,false)", got, ok)
	}
}

func TestGetPut_BalanceDrivesUses(t *testing.T) {
	reg := registry.New()
	lin := &stubTarget{name: "linear"}
	if err := reg.Register(lin); err != nil {
		t.Fatalf("Register: %v", err)
	}

	a, _ := reg.Get("linear")
	b, _ := reg.Get("linear")
	if uses := reg.Uses("linear"); uses != 2 {
		t.Fatalf("Uses after two Gets = %d, want 2", uses)
	}
	reg.Put(a)
	reg.Put(b)
	if uses := reg.Uses("linear"); uses != 0 {
		t.Fatalf("Uses after balanced Puts = %d, want 0", uses)
	}

	// Put of nil or an unregistered target is a no-op.
	reg.Put(nil)
	reg.Put(&stubTarget{name: "striped"})
	if uses := reg.Uses("linear"); uses != 0 {
		t.Fatalf("Uses after no-op Puts = %d, want 0", uses)
	}
}

func TestUnregister(t *testing.T) {
	reg := registry.New()
	lin := &stubTarget{name: "linear"}
	if err := reg.Register(lin); err != nil {
		t.Fatalf("Register: %v", err)
	}

	held, _ := reg.Get("linear")
	if err := reg.Unregister("linear"); err != registry.ErrTargetInUse {
		t.Fatalf("Unregister(in use): want ErrTargetInUse, got %v", err)
	}
	reg.Put(held)

	if err := reg.Unregister("linear"); err != nil {
		t.Fatalf("Unregister: unexpected error: %v", err)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() after Unregister = %d, want 0", reg.Count())
	}
	if err := reg.Unregister("linear"); err != registry.ErrUnknownTarget {
		t.Fatalf("Unregister(gone): want ErrUnknownTarget, got %v", err)
	}
}

func TestEntriesSnapshotAndReset(t *testing.T) {
	reg := registry.New()
	_ = reg.Register(&stubTarget{name: "linear"})
	_ = reg.Register(&stubTarget{name: "zero"})

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	// After Reset, Count() should be 0, but previous snapshot must still be usable.
	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	if snap[0].Name() == "" || snap[1].Name() == "" {
		t.Fatalf("snapshot contents invalid after reset")
	}
}
