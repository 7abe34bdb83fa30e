package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/dense/dense"
)

type reshapeOptions struct {
	source    sourceOptions
	order     string
	transpose bool
	block     []int
	chain     []string
}

func newReshapeCmd() *cobra.Command {
	opts := reshapeOptions{}

	cmd := &cobra.Command{
		Use:   "reshape ROWS COLS",
		Short: "Reshape a matrix and show the resulting view",
		Long: `Reshape a source matrix to ROWS x COLS and print the view.

ROWS and COLS are sizes or "auto" (at most one). The source is either a YAML
matrix file (--file) or 0..N-1 laid out in --storage order.

Examples:
  dense reshape 2 auto
  dense reshape 1 auto --order row
  dense reshape auto 2 --storage row --order auto --then 4,4
  dense reshape 1 auto --block 1,1,2,2
  dense reshape 8 2 --file matrix.yaml --transpose`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReshape(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.source.file, "file", "f", "", "YAML file holding the source matrix")
	flags.IntVar(&opts.source.rows, "rows", 4, "source rows (without --file)")
	flags.IntVar(&opts.source.cols, "cols", 4, "source cols (without --file)")
	flags.StringVar(&opts.source.storage, "storage", "col", "source storage order: col or row")
	flags.StringVarP(&opts.order, "order", "o", "col", "reshape order: col, row or auto")
	flags.BoolVarP(&opts.transpose, "transpose", "t", false, "reshape the transpose of the source")
	flags.IntSliceVar(&opts.block, "block", nil, "reshape the sub-block I,J,ROWS,COLS of the source")
	flags.StringSliceVar(&opts.chain, "then", nil, "further reshapes as ROWS,COLS pairs applied in sequence")
	return cmd
}

func runReshape(cmd *cobra.Command, args []string, opts reshapeOptions) error {
	rows, err := dense.ParseExtent(args[0])
	if err != nil {
		return err
	}
	cols, err := dense.ParseExtent(args[1])
	if err != nil {
		return err
	}
	order, err := dense.ParseOrder(opts.order)
	if err != nil {
		return err
	}
	if len(opts.chain)%2 != 0 {
		return fmt.Errorf("--then expects ROWS,COLS pairs, got %d values", len(opts.chain))
	}

	m, err := buildSource(opts.source)
	if err != nil {
		return err
	}
	src := m.View()
	if len(opts.block) > 0 {
		if src, err = blockOf(src, opts.block); err != nil {
			return err
		}
	}
	if opts.transpose {
		src = src.Transpose()
	}
	slog.Debug("source",
		slog.String("view", src.String()),
		slog.String("storage", src.Describe().Order().String()),
		slog.Bool("contiguous", src.Describe().Contiguous()),
		slog.Int("bytes", m.Bytes()))

	out := cmd.OutOrStdout()
	if err := renderView(out, "source", src); err != nil {
		return err
	}

	steps := [][2]dense.Extent{{rows, cols}}
	for i := 0; i < len(opts.chain); i += 2 {
		r, err := dense.ParseExtent(opts.chain[i])
		if err != nil {
			return err
		}
		c, err := dense.ParseExtent(opts.chain[i+1])
		if err != nil {
			return err
		}
		steps = append(steps, [2]dense.Extent{r, c})
	}

	cur := src
	for i, step := range steps {
		v, err := dense.Reshape[float64](cur, step[0], step[1], order)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		attrs := []any{
			slog.Int("step", i+1),
			slog.String("requested", step[0].String()+"x"+step[1].String()),
			slog.String("dims", v.Dims().String()),
			slog.String("order", v.Order().String()),
			slog.Int("row_stride", v.RowStride()),
			slog.Int("col_stride", v.ColStride()),
			slog.Bool("mapped", v.Mapped()),
			slog.Bool("materialized", v.Materialized()),
			slog.Bool("writable", v.Writable()),
		}
		if v.Materialized() {
			attrs = append(attrs, slog.Int("copied_bytes", v.Len()*m.DType().Size()))
		}
		slog.Debug("reshaped", attrs...)

		if err := renderView(out, fmt.Sprintf("step %d", i+1), v); err != nil {
			return err
		}
		cur = v
	}
	return nil
}

// blockOf returns the sub-block described by I,J,ROWS,COLS.
func blockOf(v *dense.View[float64], block []int) (*dense.View[float64], error) {
	if len(block) != 4 {
		return nil, fmt.Errorf("--block expects I,J,ROWS,COLS, got %d values", len(block))
	}
	i, j, r, c := block[0], block[1], block[2], block[3]
	if i < 0 || j < 0 || r < 0 || c < 0 || i+r > v.Rows() || j+c > v.Cols() {
		return nil, fmt.Errorf("%w: block %d,%d %dx%d of %v", dense.ErrIndexOutOfRange, i, j, r, c, v.Dims())
	}
	return v.Block(i, j, r, c), nil
}
