package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// SampleFileName is the default file WriteSample targets from the CLI.
const SampleFileName = "sample_maze.txt"

// SampleMaze is a 10×10 maze from (0,0) to (9,9) in the text format read by Parse.
const SampleMaze = `10 10
0 0
9 9
0 1 0 0 0 0 0 1 0 0
0 1 0 1 1 1 0 1 0 0
0 0 0 0 0 0 0 1 0 0
1 1 1 1 0 1 1 1 0 1
0 0 0 0 0 0 0 0 0 0
0 1 1 1 1 1 1 1 1 0
0 0 0 0 0 0 0 0 0 0
0 1 0 1 0 1 0 1 0 1
0 1 0 1 0 1 0 1 0 0
0 0 0 1 0 0 0 1 0 0
`

// intReader pulls whitespace-separated integers from a stream.
type intReader struct {
	sc *bufio.Scanner
	n  int // tokens consumed
}

func newIntReader(r io.Reader) *intReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &intReader{sc: sc}
}

// next returns the next integer, naming what was expected on failure.
func (ir *intReader) next(what string) (int, error) {
	if !ir.sc.Scan() {
		if err := ir.sc.Err(); err != nil {
			return 0, formatErr(err, "reading %s", what)
		}

		return 0, formatErr(io.ErrUnexpectedEOF, "missing %s after %d values", what, ir.n)
	}
	ir.n++
	v, err := strconv.Atoi(ir.sc.Text())
	if err != nil {
		return 0, formatErr(err, "%s is not an integer", what)
	}

	return v, nil
}

// Parse reads a maze description: a "rows cols" line, a "startRow startCol"
// line, an "endRow endCol" line, then rows×cols integers (0 path, nonzero
// wall). Only whitespace separation matters; line breaks are not significant.
// Trailing input after the last cell is ignored.
//
// Errors are *LoadError values (see ErrFormat, ErrOutOfRange, ErrBlockedEndpoint).
func Parse(r io.Reader) (*Grid, error) {
	ir := newIntReader(r)

	var header [6]int
	names := [6]string{"rows", "cols", "start row", "start col", "end row", "end col"}
	for i := range header {
		v, err := ir.next(names[i])
		if err != nil {
			return nil, err
		}
		header[i] = v
	}
	rows, cols := header[0], header[1]
	if rows <= 0 || cols <= 0 {
		return nil, formatErr(nil, "dimensions must be positive, got %dx%d", rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, formatErr(nil, "dimensions %dx%d overflow the cell count", rows, cols)
	}

	// Cells are collected before any row is allocated so a header promising
	// more cells than the input holds fails without sizing memory from it.
	total := rows * cols
	flat := make([]int, 0, min(total, 4096))
	for i := 0; i < total; i++ {
		v, err := ir.next(fmt.Sprintf("cell (%d,%d)", i/cols, i%cols))
		if err != nil {
			return nil, err
		}
		flat = append(flat, v)
	}

	values := make([][]int, rows)
	for row := range values {
		values[row] = flat[row*cols : (row+1)*cols]
	}

	return NewGrid(values, Coord{header[2], header[3]}, Coord{header[4], header[5]})
}

// ParseString is Parse over an in-memory description.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile opens path and parses it with Parse.
// Failure to open the file is returned as a wrapped *os.PathError that also
// names the working directory; parse failures are *LoadError values.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		wd, _ := os.Getwd()
		return nil, fmt.Errorf("gridgraph: could not open maze file (working directory %q): %w", wd, err)
	}
	defer f.Close()

	return Parse(f)
}

// WriteSample writes SampleMaze to path, creating or truncating it.
func WriteSample(path string) error {
	if err := os.WriteFile(path, []byte(SampleMaze), 0o644); err != nil {
		return fmt.Errorf("gridgraph: write sample maze: %w", err)
	}

	return nil
}
