// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build yv12to422debug

package chroma

import "runtime/debug"

// assert panics with a stack trace when cond is false. Only built with the
// yv12to422debug tag.
func assert(cond bool, msg string) {
	if !cond {
		panic("chroma: assertion failed: " + msg + "\n" + string(debug.Stack()))
	}
}
