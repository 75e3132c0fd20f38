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

package hwy

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically, using MaxLanes
// lanes per full vector.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
//
// Example:
//
//	hwy.ProcessWithTail[float64](len(data),
//	    func(offset int) {
//	        v := hwy.Load(data[offset:])
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	ProcessWithTailN(size, MaxLanes[T](), fullFn, tailFn)
}

// ProcessWithTailN is ProcessWithTail with an explicit lane count. Full
// vectors are always processed before the tail.
func ProcessWithTailN(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		lanes = 1
	}

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail if any
	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
