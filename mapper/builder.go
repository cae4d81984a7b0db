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
	"net/http"

	"dirpx.dev/errcode"
	"google.golang.org/grpc/codes"
)

type rangeRule struct {
	// lo, hi bound the inclusive code range. Validity (lo <= hi, lo > 0)
	// is checked when the rule is compiled into the index in New().
	lo, hi uint32
	// val is the numeric transport status to apply when this range matches.
	// For HTTP this is the final value; for gRPC we store ints in the
	// builder and convert to codes.Code later.
	val int
}

type builder struct {
	// httpOverride holds exact per-code HTTP overrides (higher than ranges).
	httpOverride map[errcode.ErrCode]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[errcode.ErrCode]int

	// httpRanges holds HTTP range rules, compiled into a rangeindex in New().
	httpRanges []rangeRule
	// grpcRanges holds gRPC range rules.
	grpcRanges []rangeRule

	// fallbacks used when no rule covers a failure code.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with the hard fallbacks in place.
func newBuilder() *builder {
	return &builder{
		httpOverride: make(map[errcode.ErrCode]int),
		grpcOverride: make(map[errcode.ErrCode]int),

		// hard fallbacks: an unmapped failure is an unclassified failure
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Unknown,
	}
}
