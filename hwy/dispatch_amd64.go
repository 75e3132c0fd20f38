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

// detectCPUFeatures records every register width the CPU and OS support.
// AVX-512 needs the foundation subset plus OS support for the ZMM state, which
// x/sys/cpu already folds into HasAVX512F.
func detectCPUFeatures() {
	var caps Capability
	if cpu.X86.HasSSE2 {
		caps |= Cap128
	}
	if cpu.X86.HasAVX2 {
		caps |= Cap256
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ {
		caps |= Cap512
	}

	switch {
	case caps.Has(Cap512):
		setLevel(DispatchAVX512, caps)
	case caps.Has(Cap256):
		setLevel(DispatchAVX2, caps)
	case caps.Has(Cap128):
		setLevel(DispatchSSE2, caps)
	default:
		setScalarMode()
	}
}
