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

// Package contrib holds algorithms built on the hwy lane operations.
//
// # Subpackages
//
//   - vec: batched reductions and element-wise maps over slices (Sum, Dot,
//     MapTo and the constant-operand kernels used to materialize lineal
//     expressions)
//
// Every function follows the same two phases: full batches of
// hwy.MaxLanes elements first, then the remainder in index order.
//
//	import "github.com/go-lineal/lineal/hwy/contrib/vec"
//
//	total := vec.Sum(data)
//	dot := vec.Dot(a, b)
package contrib
