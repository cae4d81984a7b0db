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

// Package httpx bridges errcode values into HTTP responses.
package httpx

import (
	"net/http"
	"strconv"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Meta carries extra context that the HTTP layer can add on top of the raw
// code. All fields are optional and typically come from request context,
// headers, rate-limiter output, or router-level logic.
type Meta struct {
	// Message is a human-oriented description of the failure. The code
	// carries no text of its own, so whatever is useful to the client must
	// be provided here.
	Message string

	// Correlation is a client/server correlation token (request ID,
	// idempotency key).
	Correlation string

	// RetryAfterSeconds, when positive, is surfaced both in the body and as
	// a Retry-After header.
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a failure code into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status for c via the Mapper and writes a JSON
// body carrying the raw code and whatever Meta provides. Success codes
// produce no response; the caller's normal 2xx path owns that case.
//
// The body is assembled as a protobuf Struct and serialized through
// protojson, so nested values and well-known types marshal the same way
// they would in a proto API payload.
func (w Writer) Write(rw http.ResponseWriter, c errcode.ErrCode, meta Meta) {
	if c.IsOK() {
		return
	}

	st := w.Mapper.Status(c)

	fields := map[string]any{
		"code": c.Uint32(),
	}
	if meta.Message != "" {
		fields["message"] = meta.Message
	}
	if meta.Correlation != "" {
		fields["correlation"] = meta.Correlation
	}
	if meta.RetryAfterSeconds > 0 {
		fields["retry_after_seconds"] = meta.RetryAfterSeconds
	}

	body, err := structpb.NewStruct(fields)
	if err != nil {
		// Struct construction only fails on unsupported value types, and
		// every field above is a scalar. Degrade to a bare status anyway.
		rw.WriteHeader(st.HTTP)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
	}).Marshal(body)
	_, _ = rw.Write(b)
}
