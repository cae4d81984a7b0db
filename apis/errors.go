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

import "dirpx.dev/errcode"

// Ensure the plain ErrCode value satisfies the contract.
var _ Coder = errcode.OK

// Coder represents an error that carries a 32-bit numeric status code
// following the "0 = success, nonzero = failure" convention.
//
// errcode.ErrCode itself satisfies this interface, but so can any richer
// error type a caller maintains on top of the raw code (for example a
// driver error that pairs the code with device context). Adapters at the
// transport boundary act on the code alone and treat the rest of the error
// as opaque.
//
// Implementations MUST return the raw numeric value unchanged: adapters
// rely on it round-tripping losslessly to the wire and back. A Coder whose
// ErrorCode returns 0 describes a success outcome that was nonetheless
// materialized as an error value; adapters SHOULD NOT treat it as a
// failure.
type Coder interface {
	error

	// ErrorCode returns the raw 32-bit status code.
	ErrorCode() uint32
}
