// SPDX-License-Identifier: MIT

package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write serializes p as an EXPLICIT / FULL_MATRIX instance.
//
// Every weight is truncated to an integer and left-padded to the width of the
// largest one; columns are separated by a single space. TYPE follows
// p.Symmetric(). p is assumed to satisfy the Problem invariants.
//
// Complexity: O(n²).
func Write(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", keyName, p.Name())
	if p.Symmetric() {
		fmt.Fprintf(bw, "%s %s\n", keyType, TypeTSP)
	} else {
		fmt.Fprintf(bw, "%s %s\n", keyType, TypeATSP)
	}
	fmt.Fprintf(bw, "%s %s\n", keyComment, p.Comment())
	fmt.Fprintf(bw, "%s %d\n", keyDimension, p.Size())
	fmt.Fprintf(bw, "%s %s\n", keyEdgeWeightType, WeightExplicit)
	fmt.Fprintf(bw, "%s FULL_MATRIX\n", keyEdgeWeightFmt)
	fmt.Fprintf(bw, "%s TWOD_DISPLAY\n", keyDisplayType)
	fmt.Fprintln(bw, sectionWeights)

	// Truncate once and find the widest value.
	var (
		n      = p.Size()
		rows   = make([][]int64, n)
		maxVal int64
		x, y   int
	)
	for x = 0; x < n; x++ {
		rows[x] = make([]int64, n)
		for y = 0; y < n; y++ {
			v := int64(p.Weight(x, y))
			if v > maxVal {
				maxVal = v
			}
			rows[x][y] = v
		}
	}
	width := len(strconv.FormatInt(maxVal, 10))

	for x = 0; x < n; x++ {
		for y = 0; y < n; y++ {
			if y > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%*d", width, rows[x][y])
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, markerEOF)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tsplib: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path, writes p and closes the file.
// A failing Close is reported when the write itself succeeded.
func WriteFile(path string, p *Problem) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tsplib: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("tsplib: close %s: %w", path, cerr)
		}
	}()

	return Write(f, p)
}
