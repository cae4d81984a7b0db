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

package apis

// ErrorView is a minimal, serializable representation of a failed outcome.
//
// This is the shape adapters are comfortable exposing over the wire or
// logging. Keeping it here (in apis) allows both HTTP and gRPC adapters to
// share the same struct.
type ErrorView struct {
	// Code is the raw numeric status code as returned by the foreign call.
	Code uint32 `json:"code"`

	// Message is an optional human-friendly message supplied by the caller
	// at the boundary. The code itself carries no text; whatever appears
	// here was chosen by whoever produced the view.
	Message string `json:"message,omitempty"`
}

// Descriptor is a flat, transport-friendly record of a resolved code.
//
// It carries both the raw numeric value and the concrete transport
// statuses it resolved to, and is intended for structured logging,
// tracing, or message-bus propagation.
type Descriptor struct {
	// Code is the raw numeric status code.
	Code uint32 `json:"code"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means
	// "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer). A value of 0
	// means codes.OK, which only occurs for the success sentinel.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional caller-supplied human message.
	Message string `json:"message,omitempty"`
}
