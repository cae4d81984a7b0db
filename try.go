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

package errcode

// This file provides the propagation protocol: a sequence of status-code
// producing calls stops at the first failure and yields that exact code,
// without evaluating anything after it. Success codes pass through and
// evaluation continues.
//
// Go has no overloadable postfix try operator, so two explicit renditions
// are offered:
//
//   - Chain evaluates thunks in order and returns the first failure;
//   - Do/Try short-circuit the remaining statements of a function literal,
//     which reads closest to the original operator at dense call sites.
//
// Both return the failing code unchanged, or OK when every step succeeded.

// Chain runs each function in order and returns the first failure code it
// observes. Functions after the failing one are not called. When all
// functions return the success sentinel (or none are given), Chain
// returns OK.
//
//	rc := errcode.Chain(
//	    func() errcode.ErrCode { return open(dev) },
//	    func() errcode.ErrCode { return configure(dev) },
//	    func() errcode.ErrCode { return start(dev) },
//	)
func Chain(fns ...func() ErrCode) ErrCode {
	for _, fn := range fns {
		if c := fn(); c.IsErr() {
			return c
		}
	}
	return OK
}

// failure is the private unwind token used by Try/Do. Keeping it unexported
// guarantees that only Try can raise it and only Do can stop it, so foreign
// panics are never swallowed.
type failure struct {
	code ErrCode
}

// Try is a no-op when c is the success sentinel. Otherwise it aborts the
// surrounding Do body, which then returns c.
//
// Try must only be called (directly or transitively) from a function passed
// to Do; calling it elsewhere turns a failure code into a plain panic.
func Try(c ErrCode) {
	if c.IsErr() {
		panic(failure{code: c})
	}
}

// Do runs fn and returns OK when it completes. If fn is aborted by Try, Do
// returns the failing code; statements after the failing Try never execute.
// Panics not raised by Try propagate unchanged.
//
//	rc := errcode.Do(func() {
//	    errcode.Try(open(dev))
//	    errcode.Try(configure(dev))
//	    errcode.Try(start(dev))
//	})
func Do(fn func()) (code ErrCode) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(failure)
		if !ok {
			panic(r)
		}
		code = f.code
	}()
	fn()
	return OK
}
