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

// Package mapper provides deterministic, immutable mappings from raw
// errcode values to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// An errcode.ErrCode carries a single caller-defined uint32: zero means
// success, anything else is an opaque failure code. Transport layers (HTTP
// handlers, gRPC servers) need to turn that number into concrete status
// codes. Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - exact — individual codes can be pinned to specific statuses;
//   - range-aware — contiguous code ranges can share one rule, with the
//     narrowest matching range winning;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. the success sentinel (code 0) is always 200 / codes.OK;
//  2. exact per-code override;
//  3. narrowest-range match over registered [lo, hi] rules;
//  4. fallback (500 / codes.Unknown, adjustable).
//
// Because the nonzero space is caller-defined, the package ships no
// built-in per-code table: every rule comes from the caller, who knows
// what the foreign library's numbers mean.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPStatus(errcode.Of(2), http.StatusNotFound),
//	    mapper.WithHTTPRange(100, 199, http.StatusServiceUnavailable),
//	    mapper.WithGRPCRange(100, 199, int(codes.Unavailable)),
//	)
//	if err != nil {
//	    // invalid range, etc.
//	}
//
//	st := m.Status(errcode.Of(150))
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace
// of how a particular code was resolved, including which tier matched and,
// for range rules, which range was used. This is intended for inspection
// and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's options. This
// makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper
