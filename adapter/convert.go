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

// Package adapter converts errcode values and their resolved transport
// statuses into portable shapes: apis view types for logging/serialization
// and gRPC status values for the wire.
package adapter

import (
	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ToDescriptor converts a code together with its resolved transport status
// into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message
// bus propagation. It carries both the raw numeric code and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(c errcode.ErrCode, st apis.Status, msg string) apis.Descriptor {
	return apis.Descriptor{
		Code:       c.Uint32(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    msg,
	}
}

// ToView converts a code into a public ErrorView. The message is whatever
// the caller chose to attach at the boundary; the code itself carries no
// text.
func ToView(c errcode.ErrCode, msg string) apis.ErrorView {
	return apis.ErrorView{
		Code:    c.Uint32(),
		Message: msg,
	}
}

// ToGRPCStatus converts a code and its resolved status into a gRPC status
// value, attaching the raw uint32 as a wrapperspb.UInt32Value detail so it
// round-trips losslessly through the transport.
//
// If attaching the detail fails, the bare status is returned; the code is
// then only recoverable from the message, not from details.
func ToGRPCStatus(c errcode.ErrCode, st apis.Status, msg string) *gstatus.Status {
	if msg == "" {
		msg = c.String()
	}
	base := gstatus.New(st.GRPC, msg)
	with, err := base.WithDetails(wrapperspb.UInt32(c.Uint32()))
	if err != nil {
		return base
	}
	return with
}

// CodeFromGRPCStatus recovers the raw code attached by ToGRPCStatus.
// It reports false when the status carries no UInt32Value detail.
func CodeFromGRPCStatus(st *gstatus.Status) (errcode.ErrCode, bool) {
	if st == nil {
		return errcode.OK, false
	}
	for _, d := range st.Details() {
		if v, ok := d.(*wrapperspb.UInt32Value); ok {
			return errcode.Of(v.GetValue()), true
		}
	}
	return errcode.OK, false
}
