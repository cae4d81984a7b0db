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
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCode is returned when a value cannot be parsed as an
	// ErrCode. Having a dedicated sentinel makes it easy for callers and
	// tests to detect "this is about code format" vs some other error.
	ErrInvalidCode = errors.New("errcode: invalid code")
)

// Ensure ErrCode implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*ErrCode)(nil)
	_ encoding.TextUnmarshaler = (*ErrCode)(nil)
)

// Parse converts a textual code into an ErrCode.
//
// It accepts the plain decimal form ("5", "4294967295") as well as the
// String form with a leading 'E' or 'e' ("E5"), with surrounding whitespace
// trimmed. Anything that does not fit a uint32 yields ErrInvalidCode.
func Parse(s string) (ErrCode, error) {
	s = normalize(s)
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return OK, ErrInvalidCode
	}
	return ErrCode(v), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in var blocks or tests.
func MustParse(s string) ErrCode {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// normalize trims whitespace and strips a single leading 'E'/'e' so that
// both the raw decimal and the String() form parse. It performs no other
// transformation; validity is decided by the numeric parse.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 1 && (s[0] == 'E' || s[0] == 'e') {
		s = s[1:]
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
//
// The marshaled form is the bare decimal value (no 'E' prefix) so that the
// code round-trips as a plain number through JSON/YAML encoders.
func (c ErrCode) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts.
func (c *ErrCode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
