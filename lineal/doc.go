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

// Package lineal is a lazy arithmetic algebra over one-dimensional numeric
// vectors.
//
// A Vector is either a Row or a Col. Combining a vector with a scalar does not
// compute anything: it returns an *Expr that references the vector and records
// the operation. Combining an *Expr with a further scalar rewrites the pair into
// a single node, so that chains such as
//
//	e := lineal.Add(lineal.Div(lineal.Mul(v, 2.0), 3.0), 1.0)
//
// collapse into one node over v: v*2 divided by 3 becomes v*(2/3), and adding 1
// turns it into the fused multiply-add (2/3)*v + 1. Every element is visited
// exactly once when the result is evaluated.
//
// Evaluation is explicit: Eval and Elem evaluate a single element, Materialize
// evaluates all of them into a new vector, and Sum and InnerProduct reduce.
// Reductions over raw vectors use the batched kernels of hwy/contrib/vec.
//
// # Orientation
//
// Scalar operations keep the orientation of their operand. The only
// vector-vector operation is the inner product, which requires a row on the
// left and a column on the right. Any other pairing yields a
// *ShapeMismatchError.
//
// # Element types
//
// Every node carries a DType computed once with PreciseType from its operand
// and scalars. Operand elements are converted to that type, with Go conversion
// semantics, before the node's arithmetic is applied.
//
// # Lengths
//
// The unchecked API never compares lengths: an inner product of operands of
// different lengths covers the shorter one. CheckedInnerProduct, CheckLengths
// and CheckLive report such problems as errors.
//
// # Lifetimes
//
// Nodes hold references, not copies. Writes to a vector after a node over it
// was built are seen by later evaluations. Evaluating a node whose vector was
// released panics.
package lineal
