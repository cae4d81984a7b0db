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

package mapper

import (
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/mapper/internal/rangeindex"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained mapper instance —
// no shared references to user-provided structures remain.
//
// Build process overview:
//
//  1. Start from an empty builder (the nonzero code space is caller-defined,
//     so there are no library defaults to seed).
//  2. Apply user-provided options (overrides, range rules, fallbacks).
//  3. Compile the range rules into narrowest-match indexes (HTTP & gRPC).
//  4. Freeze the override maps into immutable copies.
//
// Errors returned from this function indicate invalid ranges (lo > hi, or
// a range covering the success sentinel).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for _, opt := range opts {
		opt(b)
	}

	// Compile HTTP range rules.
	httpIdx := rangeindex.New[int]()
	for _, r := range b.httpRanges {
		if err := httpIdx.Insert(r.lo, r.hi, r.val); err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP range [%d,%d]: %w", r.lo, r.hi, err)
		}
	}

	// Compile gRPC range rules. Values are stored as int in the builder
	// and converted to codes.Code here.
	grpcIdx := rangeindex.New[codes.Code]()
	for _, r := range b.grpcRanges {
		if err := grpcIdx.Insert(r.lo, r.hi, codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC range [%d,%d]: %w", r.lo, r.hi, err)
		}
	}

	m := &mapper{
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPCOverrides(b.grpcOverride),
		httpIdx:      httpIdx,
		grpcIdx:      grpcIdx,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// exact overrides and narrowest-match range rules. Lookups are cheap and
// safe for concurrent use once constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over range rules.
	httpOverride map[errcode.ErrCode]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[errcode.ErrCode]codes.Code

	// httpIdx resolves HTTP statuses from caller-registered code ranges.
	httpIdx *rangeindex.Index[int]

	// grpcIdx resolves gRPC statuses from caller-registered code ranges.
	grpcIdx *rangeindex.Index[codes.Code]

	// fallbackHTTP is used when no rule covers a failure code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when no rule covers a failure code.
	// Typically codes.Unknown.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. the success sentinel always resolves to 200;
//  2. exact per-code override;
//  3. narrowest matching range rule;
//  4. fallback (500 unless adjusted).
func (m *mapper) HTTPStatus(c errcode.ErrCode) int {
	// 1. Success is not subject to rules.
	if c.IsOK() {
		return http.StatusOK
	}

	// 2. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 3. Narrowest-range match.
	if v, ok := m.httpIdx.Match(c.Uint32()); ok {
		return v
	}

	// 4. Fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c errcode.ErrCode) codes.Code {
	// 1. Success sentinel.
	if c.IsOK() {
		return codes.OK
	}

	// 2. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 3. Narrowest-range match.
	if v, ok := m.grpcIdx.Match(c.Uint32()); ok {
		return v
	}

	// 4. Fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single code.
func (m *mapper) Status(c errcode.ErrCode) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and
// gRPC statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (sentinel, override, range, or fallback) and, for range matches, which
// range was used.
//
// Example output:
//
//	code="E150"
//	http: source=range pattern="100-199" -> 503
//	grpc: source=range pattern="100-199" -> UNAVAILABLE(14)
func (m *mapper) Explain(c errcode.ErrCode) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c.String())
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats the line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c errcode.ErrCode) string {
	if c.IsOK() {
		return fmt.Sprintf("http: source=sentinel -> %d", http.StatusOK)
	}
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok, pat := m.httpIdx.MatchWithPattern(c.Uint32()); ok {
		return fmt.Sprintf("http: source=range pattern=%q -> %d", pat, v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC formats the line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c errcode.ErrCode) string {
	if c.IsOK() {
		return fmt.Sprintf("grpc: source=sentinel -> %s(%d)", grpcName(codes.OK), int(codes.OK))
	}
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", grpcName(v), int(v))
	}
	if v, ok, pat := m.grpcIdx.MatchWithPattern(c.Uint32()); ok {
		return fmt.Sprintf("grpc: source=range pattern=%q -> %s(%d)", pat, grpcName(v), int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", grpcName(m.fallbackGRPC), int(m.fallbackGRPC))
}

// grpcName renders a grpc code in the upper-case form used by Explain.
func grpcName(c codes.Code) string {
	return strings.ToUpper(c.String())
}
