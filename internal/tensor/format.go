package tensor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/tinytensor/internal/float16"
)

// newTable applies the shared rendering options: borderless, right-aligned
// cells, two spaces between columns.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	return table
}

// cell formats the element at row-major index i, decoding half-precision
// elements through the codec so the printed value is the one the encoding
// actually represents.
func (t *Tensor) cell(i int) string {
	switch b := t.data.(type) {
	case float32Buffer:
		return strconv.FormatFloat(float64(b[i]), 'f', 3, 32)
	case float16Buffer:
		return strconv.FormatFloat(float64(float16.Decode(b[i])), 'f', 3, 32)
	case int8Buffer:
		return strconv.Itoa(int(b[i]))
	default:
		panic("unknown buffer type")
	}
}

// Render writes a row-major view of the tensor to w, one table row per
// tensor row, preceded by a shape/type line.
func (t *Tensor) Render(w io.Writer) {
	fmt.Fprintf(w, "Tensor (%dx%d, %s):\n", t.rows, t.cols, t.DType())

	table := newTable(w)
	for r := 0; r < t.rows; r++ {
		row := make([]string, t.cols)
		for c := 0; c < t.cols; c++ {
			row[c] = t.cell(r*t.cols + c)
		}
		table.Append(row)
	}
	table.Render()
}

// String implements fmt.Stringer via Render.
func (t *Tensor) String() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}

// MemoryComparison renders the per-type storage cost of the given element
// count, one row per storage type.
func MemoryComparison(elements int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Memory usage for %d elements:\n", elements)

	table := newTable(&sb)
	table.SetHeader([]string{"TYPE", "BYTES"})
	for _, dt := range []DataType{Float32, Float16, Int8} {
		table.Append([]string{dt.String(), strconv.Itoa(elements * dt.Size())})
	}
	table.Render()
	return sb.String()
}
