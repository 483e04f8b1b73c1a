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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// SSE2 is part of the amd64 baseline, so 16-byte lanes are always safe.
	if cpu.X86.HasAVX2 {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
		return
	}
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"
}

// HasAVX2 returns true if the CPU supports AVX2, which is what makes the
// 256-bit lane width the preferred default.
func HasAVX2() bool {
	return cpu.X86.HasAVX2
}
