// SPDX-License-Identifier: MIT

// Command typedstart-demo walks through the module's typed models and
// utility functions with literal sample data: a User record, a price
// total, and the full set of matrix operations. Results go to stdout;
// diagnostics go to the structured logger on stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/typedlabs/typedstart/internal/logging"
	"github.com/typedlabs/typedstart/matrix"
	"github.com/typedlabs/typedstart/pricing"
	"github.com/typedlabs/typedstart/user"
)

// mustMatrix constructs a matrix from literal demo data or exits. The
// literals below are rectangular, so the error path is unreachable in
// practice; it exists so a future edit to the samples fails loudly.
func mustMatrix(name string, grid [][]float64) *matrix.Matrix {
	m, err := matrix.New(grid)
	if err != nil {
		slog.Error("failed to build sample matrix", "name", name, "error", err)
		os.Exit(1)
	}

	return m
}

func main() {
	logging.Setup()
	slog.Info("starting typedstart demo")

	fmt.Println("=== Typed Go Starter Demo ===")

	// 1. User operations.
	fmt.Println("\n1. User Operations:")
	u := user.New(user.ID(1), "Ada", "Lovelace", "ada@example.com")
	name := u.FullName()
	fmt.Printf("   User: %s\n", name)

	// 2. Price calculations.
	fmt.Println("\n2. Price Calculations:")
	prices := []float64{9.99, 4.50, 2.00}
	total := pricing.Total(prices)
	fmt.Printf("   Prices: %v\n", prices)
	fmt.Printf("   Total: %.2f\n", total)

	// 3. Matrix operations.
	fmt.Println("\n3. Matrix Operations:")

	a := mustMatrix("A", [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustMatrix("B", [][]float64{{7, 8}, {9, 10}, {11, 12}})
	square := mustMatrix("Square", [][]float64{{2, 1}, {3, 4}})

	fmt.Println("   Matrix A (2x3):")
	printIndented(a)
	fmt.Println("\n   Matrix B (3x2):")
	printIndented(b)

	product, err := matrix.Mul(a, b)
	if err != nil {
		slog.Error("matrix multiplication failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("\n   A × B (Matrix Multiplication):")
	printIndented(product)

	c := mustMatrix("C", [][]float64{{1, 2}, {3, 4}})
	d := mustMatrix("D", [][]float64{{5, 6}, {7, 8}})
	sum, err := c.Add(d)
	if err != nil {
		slog.Error("matrix addition failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("\n   Matrix C + Matrix D (Addition):")
	printIndented(sum)

	fmt.Println("\n   Matrix C × 2 (Scalar Multiplication):")
	printIndented(c.Scale(2))

	fmt.Println("\n   Matrix C Transpose:")
	printIndented(c.Transpose())

	identity, err := matrix.NewIdentity(3)
	if err != nil {
		slog.Error("identity construction failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("\n   3x3 Identity Matrix:")
	printIndented(identity)

	detSquare, err := matrix.Det(square)
	if err != nil {
		slog.Error("determinant failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\n   Determinant of Matrix Square: %g\n", detSquare)

	traceSquare, err := matrix.Trace(square)
	if err != nil {
		slog.Error("trace failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("   Trace of Matrix Square: %g\n", traceSquare)

	// Final summary.
	fmt.Println("\n=== Summary ===")
	fmt.Printf("Hello, %s! Your total is %.2f.\n", name, total)
	fmt.Println("Matrix operations completed successfully!")
	fmt.Printf("Matrix A×B result dimensions: %dx%d\n", product.Rows(), product.Cols())

	slog.Info("demo finished",
		"user", name,
		"total", total,
		"product_rows", product.Rows(),
		"product_cols", product.Cols(),
	)
}

// printIndented renders a matrix with the demo's leading whitespace.
func printIndented(m *matrix.Matrix) {
	for _, line := range strings.Split(m.String(), "\n") {
		fmt.Printf("   %s\n", line)
	}
}
