/*
   Copyright 2025 The DIRPX Authors

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

package errcode

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 5, 13, 255, 1 << 16, math.MaxUint32 - 1, math.MaxUint32}
	for _, v := range values {
		if got := Of(v).Uint32(); got != v {
			t.Fatalf("Of(%d).Uint32() = %d, want %d", v, got, v)
		}
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		code ErrCode
		ok   bool
	}{
		{"zero is success", OK, true},
		{"one is failure", Of(1), false},
		{"arbitrary failure", Of(42), false},
		{"max uint32 is failure", Of(math.MaxUint32), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code.IsOK() != tt.ok {
				t.Fatalf("IsOK() = %v, want %v", tt.code.IsOK(), tt.ok)
			}
			if tt.code.IsErr() == tt.ok {
				t.Fatalf("IsErr() = %v, want %v", tt.code.IsErr(), !tt.ok)
			}
		})
	}
}

func TestValueEquality(t *testing.T) {
	if Of(5) != Of(5) {
		t.Fatal("codes from the same value must compare equal")
	}
	if Of(5) == Of(6) {
		t.Fatal("codes from different values must compare unequal")
	}
	if Of(0) != OK {
		t.Fatal("Of(0) must equal the OK sentinel")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		code ErrCode
		want string
	}{
		{OK, "E0"},
		{Of(5), "E5"},
		{Of(math.MaxUint32), "E4294967295"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestErr(t *testing.T) {
	if err := OK.Err(); err != nil {
		t.Fatalf("OK.Err() = %v, want nil", err)
	}
	err := Of(7).Err()
	if err == nil {
		t.Fatal("failure code must produce a non-nil error")
	}
	if err.Error() != "E7" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "E7")
	}
}

func TestAsCode(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if c, ok := AsCode(nil); ok || c != OK {
			t.Fatalf("AsCode(nil) = (%v, %v), want (OK, false)", c, ok)
		}
	})

	t.Run("direct code", func(t *testing.T) {
		c, ok := AsCode(Of(9).Err())
		if !ok || c != Of(9) {
			t.Fatalf("AsCode = (%v, %v), want (E9, true)", c, ok)
		}
	})

	t.Run("wrapped code", func(t *testing.T) {
		wrapped := fmt.Errorf("device init: %w", Of(11).Err())
		c, ok := AsCode(wrapped)
		if !ok || c != Of(11) {
			t.Fatalf("AsCode = (%v, %v), want (E11, true)", c, ok)
		}
	})

	t.Run("unrelated error", func(t *testing.T) {
		if c, ok := AsCode(errors.New("boom")); ok || c != OK {
			t.Fatalf("AsCode = (%v, %v), want (OK, false)", c, ok)
		}
	})
}

func TestMust(t *testing.T) {
	// must not panic on success
	OK.Must()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Must should panic on a failure code")
		}
	}()
	Of(3).Must()
}

func TestExpect(t *testing.T) {
	OK.Expect("should not fire")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expect should panic on a failure code")
		}
		if s, ok := r.(string); !ok || s != "[E3] device gone" {
			t.Fatalf("panic value = %v, want %q", r, "[E3] device gone")
		}
	}()
	Of(3).Expect("device gone")
}
