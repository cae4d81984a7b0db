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

// Package errcode wraps the classic "0 = success, nonzero = failure" integer
// convention used by C libraries, syscalls and other foreign interfaces into
// a small value type with short-circuiting propagation helpers.
//
// The wrapper is binary-compatible with a raw uint32: a foreign return value
// converts directly via Of / a plain conversion, and Uint32 round-trips it
// losslessly. The type does not interpret nonzero values — every failure
// code is opaque and caller-defined.
package errcode

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrCode is a 32-bit unsigned status code.
//
// The zero value is the canonical success sentinel; any other value denotes
// a failure whose numeric meaning belongs entirely to the caller. Values are
// immutable, freely copyable, and compare with ==. ErrCode also implements
// the built-in error interface so a nonzero code can travel through ordinary
// Go error returns — see Err for the nil-on-success bridge.
type ErrCode uint32

// OK is the success sentinel.
const OK ErrCode = 0

// Of converts a raw uint32 (typically the return value of a foreign call)
// into an ErrCode. It always succeeds; any uint32 is a legal code,
// including 0.
func Of(v uint32) ErrCode { return ErrCode(v) }

// Uint32 returns the raw numeric value. Of(c.Uint32()) == c for every code.
func (c ErrCode) Uint32() uint32 { return uint32(c) }

// ErrorCode returns the raw numeric value. It exists alongside Uint32 so
// that ErrCode — and any richer error type embedding one — satisfies the
// apis.Coder contract used by the transport adapters.
func (c ErrCode) ErrorCode() uint32 { return uint32(c) }

// IsOK reports whether the code is the success sentinel.
func (c ErrCode) IsOK() bool { return c == OK }

// IsErr reports whether the code denotes a failure.
func (c ErrCode) IsErr() bool { return c != OK }

// String formats the code as "E<decimal>", e.g. "E0", "E5", "E4294967295".
func (c ErrCode) String() string {
	return "E" + strconv.FormatUint(uint64(c), 10)
}

// Error implements the built-in error interface. The success sentinel still
// produces a non-nil error when used through this interface directly; use
// Err when "nil means success" semantics are wanted.
func (c ErrCode) Error() string { return c.String() }

// Err bridges the code into idiomatic Go error handling: it returns nil for
// the success sentinel and the code itself otherwise.
//
//	if err := errcode.Of(rc).Err(); err != nil {
//	    return err
//	}
func (c ErrCode) Err() error {
	if c == OK {
		return nil
	}
	return c
}

// Must panics if the code denotes a failure. Use it at call sites where a
// nonzero code is a programmer error rather than a recoverable condition.
func (c ErrCode) Must() {
	if c.IsErr() {
		panic(fmt.Sprintf("errcode: %s", c))
	}
}

// Expect is like Must but prefixes the panic with a caller-supplied message.
func (c ErrCode) Expect(msg string) {
	if c.IsErr() {
		panic(fmt.Sprintf("[%s] %s", c, msg))
	}
}

// AsCode extracts an ErrCode from an error chain.
//
// It reports true when err (or anything it wraps) is an ErrCode, including
// codes that traveled through fmt.Errorf("%w", ...). A nil error yields
// (OK, false): there is no code to extract, even though nil conventionally
// means success.
func AsCode(err error) (ErrCode, bool) {
	if err == nil {
		return OK, false
	}
	var c ErrCode
	if errors.As(err, &c) {
		return c, true
	}
	return OK, false
}
