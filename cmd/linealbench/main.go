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

// Command linealbench times the inner product of two composed vectors,
// (row*2/3) . (col*2), over vectors of ones.
//
// Usage:
//
//	linealbench -n 1024 -iters 2000000
//	HWY_NO_SIMD=1 linealbench -v          # scalar path only
//
// Two strategies are reported: the lazy one, where the scalar arithmetic is
// pushed out of the reduction, and an eager one that materializes both sides
// before every dot product.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/go-lineal/lineal/hwy"
	"github.com/go-lineal/lineal/lineal"
)

var (
	size    = flag.Int("n", 1024, "Number of elements per vector")
	iters   = flag.Int("iters", 2000000, "Number of dot products per strategy")
	verbose = flag.Bool("v", false, "Log debug information")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *size < 0 || *iters <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be >= 0 and -iters > 0\n\n")
		flag.Usage()
		os.Exit(1)
	}
	logger.Debug("dispatch",
		"level", hwy.CurrentName(),
		"width", hwy.CurrentWidth(),
		"caps", hwy.Capabilities().String(),
		"packed", hwy.PackedOf[float64]().String())

	if err := run(logger, *size, *iters); err != nil {
		logger.Error("benchmark failed", "error", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}

type strategy struct {
	name string
	dot  func(row, col lineal.Operand) (lineal.Scalar, error)
}

func run(logger *slog.Logger, n, iterations int) error {
	row, err := lineal.NewRow[float64](n, lineal.FillOnes)
	if err != nil {
		return errors.Wrap(err, "allocating row")
	}
	defer row.Release()
	col, err := lineal.NewCol[float64](n, lineal.FillOnes)
	if err != nil {
		return errors.Wrap(err, "allocating col")
	}
	defer col.Release()
	view := lineal.ViewVector(lineal.Col, col.Data())

	rowOp := lineal.Div(lineal.Mul(row, 2.0), 3.0)
	colOp := lineal.Mul(view, 2.0)
	logger.Debug("operands",
		"row", rowOp.String(), "row_kind", rowOp.Kind().String(),
		"col", colOp.String(), "col_scalar_addition", colOp.IsScalarAddition())

	strategies := []strategy{
		{"lazy", lineal.InnerProduct},
		{"eager", eagerDot},
	}
	for _, s := range strategies {
		var alpha float64
		start := time.Now()
		for range iterations {
			got, err := s.dot(rowOp, colOp)
			if err != nil {
				return errors.Wrapf(err, "%s inner product", s.name)
			}
			alpha += got.Float64()
		}
		elapsed := time.Since(start)
		logger.Info("done", "strategy", s.name, "n", n, "iters", iterations, "alpha", alpha)
		fmt.Printf("%-6s took %.1fns per dot-product\n", s.name,
			float64(elapsed.Nanoseconds())/float64(iterations))
	}
	return nil
}

// eagerDot materializes both operands before the dot product.
func eagerDot(row, col lineal.Operand) (lineal.Scalar, error) {
	r, err := lineal.Materialize[float64](row)
	if err != nil {
		return lineal.Scalar{}, err
	}
	c, err := lineal.Materialize[float64](col)
	if err != nil {
		return lineal.Scalar{}, err
	}
	return lineal.InnerProduct(r, c)
}
