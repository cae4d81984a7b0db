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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/mapper"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New(
		mapper.WithHTTPStatus(errcode.Of(2), http.StatusNotFound),
		mapper.WithHTTPRange(100, 199, http.StatusServiceUnavailable),
	)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestWrite_MappedCode(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, errcode.Of(2), Meta{Message: "no such device"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}

	body := decodeBody(t, rec)
	if body["code"] != float64(2) {
		t.Fatalf("body code = %v, want 2", body["code"])
	}
	if body["message"] != "no such device" {
		t.Fatalf("body message = %v", body["message"])
	}
}

func TestWrite_RangeRuleAndRetryAfter(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, errcode.Of(150), Meta{RetryAfterSeconds: 30})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Fatalf("Retry-After = %q, want 30", got)
	}
	body := decodeBody(t, rec)
	if body["retry_after_seconds"] != float64(30) {
		t.Fatalf("body retry_after_seconds = %v", body["retry_after_seconds"])
	}
}

func TestWrite_FallbackCarriesMaxCode(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, errcode.Of(4294967295), Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["code"] != float64(4294967295) {
		t.Fatalf("body code = %v, want 4294967295", body["code"])
	}
	if _, ok := body["message"]; ok {
		t.Fatal("empty message must be omitted")
	}
}

func TestWrite_SuccessWritesNothing(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, errcode.OK, Meta{Message: "ignored"})

	if rec.Body.Len() != 0 {
		t.Fatalf("success must not produce a body, got %q", rec.Body.String())
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("recorder status = %d, want untouched 200", rec.Code)
	}
}
