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

// Package grpcx bridges errcode values into gRPC server plumbing.
package grpcx

import (
	"context"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors carrying a raw status code into gRPC status errors.
//
// An error "carries a code" when it implements apis.Coder or wraps an
// errcode.ErrCode (errors.As). The provided apis.Mapper resolves the
// numeric code into the transport status; the raw uint32 travels alongside
// as a status detail so clients can recover it with ExtractCode.
//
// Errors without a code are returned as-is — this interceptor only speaks
// for the single uint32 code space and leaves everything else alone.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		c, ok := codeOf(err)
		if !ok || c.IsOK() {
			// Not ours, or a success outcome materialized as an error —
			// return as-is.
			return nil, err
		}

		st := m.Status(c)
		return nil, adapter.ToGRPCStatus(c, st, err.Error()).Err()
	}
}

// ExtractCode pulls the raw status code out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractCode(err error) (errcode.ErrCode, bool) {
	if err == nil {
		return errcode.OK, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return errcode.OK, false
	}
	return adapter.CodeFromGRPCStatus(st)
}

// codeOf extracts the numeric code carried by err, preferring the explicit
// apis.Coder contract over errors.As unwrapping.
func codeOf(err error) (errcode.ErrCode, bool) {
	if coder, ok := err.(apis.Coder); ok {
		return errcode.Of(coder.ErrorCode()), true
	}
	return errcode.AsCode(err)
}
