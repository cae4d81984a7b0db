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

package adapter

import (
	"math"
	"testing"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

func TestToDescriptor(t *testing.T) {
	d := ToDescriptor(errcode.Of(42), apis.Status{HTTP: 503, GRPC: codes.Unavailable}, "backend down")
	if d.Code != 42 {
		t.Fatalf("Code = %d, want 42", d.Code)
	}
	if d.HTTPStatus != 503 || d.GRPCCode != int(codes.Unavailable) {
		t.Fatalf("statuses = %d/%d, want 503/%d", d.HTTPStatus, d.GRPCCode, int(codes.Unavailable))
	}
	if d.Message != "backend down" {
		t.Fatalf("Message = %q", d.Message)
	}
}

func TestToView(t *testing.T) {
	v := ToView(errcode.Of(7), "")
	if v.Code != 7 || v.Message != "" {
		t.Fatalf("ToView = %+v", v)
	}
}

func TestGRPCStatusRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code errcode.ErrCode
	}{
		{"small code", errcode.Of(5)},
		{"max uint32", errcode.Of(math.MaxUint32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ToGRPCStatus(tt.code, apis.Status{HTTP: 500, GRPC: codes.Unknown}, "")
			if st.Code() != codes.Unknown {
				t.Fatalf("Code() = %v, want Unknown", st.Code())
			}
			if st.Message() != tt.code.String() {
				t.Fatalf("Message() = %q, want %q", st.Message(), tt.code.String())
			}

			got, ok := CodeFromGRPCStatus(st)
			if !ok {
				t.Fatal("detail missing from status")
			}
			if got != tt.code {
				t.Fatalf("recovered %v, want %v", got, tt.code)
			}
		})
	}
}

func TestCodeFromGRPCStatus_NoDetail(t *testing.T) {
	if _, ok := CodeFromGRPCStatus(gstatus.New(codes.Internal, "plain")); ok {
		t.Fatal("plain status must not yield a code")
	}
	if _, ok := CodeFromGRPCStatus(nil); ok {
		t.Fatal("nil status must not yield a code")
	}
}
