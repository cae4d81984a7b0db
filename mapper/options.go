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
	"dirpx.dev/errcode"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPStatus registers an exact HTTP status for the given code.
// Exact rules take precedence over range rules.
func WithHTTPStatus(c errcode.ErrCode, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCStatus registers an exact gRPC status for the given code.
// Exact rules take precedence over range rules.
func WithGRPCStatus(c errcode.ErrCode, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPRange adds an HTTP rule covering the inclusive code range
// [lo, hi]. When several ranges contain a code, the narrowest one wins.
// Ranges must not cover 0 (the success sentinel).
func WithHTTPRange(lo, hi uint32, http int) Option {
	return func(b *builder) { b.httpRanges = append(b.httpRanges, rangeRule{lo, hi, http}) }
}

// WithGRPCRange adds a gRPC rule covering the inclusive code range
// [lo, hi]. When several ranges contain a code, the narrowest one wins.
// Ranges must not cover 0 (the success sentinel).
func WithGRPCRange(lo, hi uint32, grpc int) Option {
	return func(b *builder) { b.grpcRanges = append(b.grpcRanges, rangeRule{lo, hi, grpc}) }
}

// WithHTTPFallback replaces the HTTP status used when no rule covers a
// failure code. The library default is 500.
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithGRPCFallback replaces the gRPC status used when no rule covers a
// failure code. The library default is codes.Unknown.
func WithGRPCFallback(grpc codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}
