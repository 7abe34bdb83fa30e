package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/dense/dense"
)

// matrixFile is the YAML form of a source matrix:
//
//	rows: 2
//	cols: 3
//	order: row
//	data: [1, 2, 3, 4, 5, 6]
type matrixFile struct {
	Rows  int       `yaml:"rows"`
	Cols  int       `yaml:"cols"`
	Order string    `yaml:"order"`
	Data  []float64 `yaml:"data"`
}

// sourceOptions describes where the source matrix comes from.
type sourceOptions struct {
	file    string
	rows    int
	cols    int
	storage string
}

// loadMatrixFile reads and decodes a matrix document.
func loadMatrixFile(path string) (*matrixFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix file: %w", err)
	}
	var mf matrixFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse matrix file %s: %w", path, err)
	}
	return &mf, nil
}

// buildSource creates the source matrix: from a file when one is given,
// otherwise 0..N-1 laid out in the requested storage order.
func buildSource(opts sourceOptions) (*dense.Matrix[float64], error) {
	if opts.file == "" {
		order, err := storageOrder(opts.storage)
		if err != nil {
			return nil, err
		}
		if opts.rows < 0 || opts.cols < 0 {
			return nil, fmt.Errorf("invalid source dimensions %dx%d", opts.rows, opts.cols)
		}
		return dense.Arange[float64](opts.rows, opts.cols, order), nil
	}

	mf, err := loadMatrixFile(opts.file)
	if err != nil {
		return nil, err
	}
	orderName := mf.Order
	if orderName == "" {
		orderName = opts.storage
	}
	order, err := storageOrder(orderName)
	if err != nil {
		return nil, err
	}
	m, err := dense.FromSlice(mf.Data, mf.Rows, mf.Cols, order)
	if err != nil {
		return nil, fmt.Errorf("matrix file %s: %w", opts.file, err)
	}
	return m, nil
}

// storageOrder parses an order that must name a concrete layout.
func storageOrder(s string) (dense.Order, error) {
	order, err := dense.ParseOrder(s)
	if err != nil {
		return 0, err
	}
	if order == dense.AutoOrder {
		return 0, fmt.Errorf("%w: storage order must be col or row", dense.ErrInvalidOrder)
	}
	return order, nil
}
