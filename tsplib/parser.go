// SPDX-License-Identifier: MIT

package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsplib/matrix"
)

// Header keys and section markers, compared after normalization.
const (
	keyName           = "NAME:"
	keyType           = "TYPE:"
	keyComment        = "COMMENT:"
	keyDimension      = "DIMENSION:"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE:"
	keyEdgeWeightFmt  = "EDGE_WEIGHT_FORMAT:"
	keyDisplayType    = "DISPLAY_DATA_TYPE:"
	sectionWeights    = "EDGE_WEIGHT_SECTION"
	sectionCoords     = "NODE_COORD_SECTION"
	markerEOF         = "EOF"
)

// maxLineBytes bounds a single physical line; explicit matrices may put a whole row on one line.
const maxLineBytes = 64 << 20

// parseState is the parser mode.
type parseState uint8

const (
	stateHeader  parseState = iota // scalar fields
	stateWeights                   // EDGE_WEIGHT_SECTION: numeric tokens fill the matrix
	stateCoords                    // NODE_COORD_SECTION: one point per line
	stateDone                      // a data section was closed; only a second section is an error
)

// parser holds the single-pass state. The (x, y) fill cursor is independent
// of line boundaries.
type parser struct {
	state parseState
	line  int

	name        string
	comment     string
	size        int // -1 until DIMENSION is seen
	problemType ProblemType
	weightType  WeightType

	data   []float64 // row-major size×size buffer for EDGE_WEIGHT_SECTION
	x, y   int       // next cell to fill
	filled int       // tokens consumed so far

	points []Point // NODE_COORD_SECTION points in file order

	weights *matrix.Dense // result of the closed data section
}

// ParseFile opens path, parses it and closes it, also on failure.
// I/O errors are returned wrapped; errors.Is(err, fs.ErrNotExist) still matches.
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %s: %w", path, err)
	}

	return p, nil
}

// Parse reads a TSPLIB instance from r in a single forward pass.
//
// Errors: ErrMalformedInstance (wrapped with the line number) for grammar
// violations; read errors from r are returned wrapped.
// Complexity: O(n²) time and space for an n-node instance.
func Parse(r io.Reader) (*Problem, error) {
	ps := &parser{size: -1}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		ps.line++
		if err := ps.feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	return ps.finish()
}

// normalize trims the line and drops a single space in front of every colon.
func normalize(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), " :", ":")
}

// feed dispatches one physical line on the current state.
func (ps *parser) feed(raw string) error {
	switch ps.state {
	case stateWeights:
		return ps.feedWeights(strings.TrimSpace(raw))
	case stateCoords:
		return ps.feedCoords(strings.TrimSpace(raw))
	case stateDone:
		line := normalize(raw)
		if strings.HasPrefix(line, sectionWeights) || strings.HasPrefix(line, sectionCoords) {
			return malformedf(ps.line, "second data section %q", line)
		}
		return nil
	default:
		return ps.feedHeader(normalize(raw))
	}
}

// feedHeader handles scalar fields and section markers.
func (ps *parser) feedHeader(line string) error {
	switch {
	case strings.HasPrefix(line, keyName):
		ps.name = value(line, keyName)
	case strings.HasPrefix(line, keyType):
		ps.problemType = ParseProblemType(value(line, keyType))
	case strings.HasPrefix(line, keyComment):
		ps.comment = value(line, keyComment)
	case strings.HasPrefix(line, keyDimension):
		raw := value(line, keyDimension)
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return malformedf(ps.line, "invalid DIMENSION %q", raw)
		}
		ps.size = n
	case strings.HasPrefix(line, keyEdgeWeightType):
		ps.weightType = ParseWeightType(value(line, keyEdgeWeightType))
	case strings.HasPrefix(line, sectionWeights):
		if err := ps.requireHeader(sectionWeights); err != nil {
			return err
		}
		ps.data = make([]float64, ps.size*ps.size)
		ps.state = stateWeights
	case strings.HasPrefix(line, sectionCoords):
		if err := ps.requireHeader(sectionCoords); err != nil {
			return err
		}
		ps.points = make([]Point, 0, ps.size)
		ps.state = stateCoords
	}
	// Anything else (EDGE_WEIGHT_FORMAT, DISPLAY_DATA_TYPE, blank lines, EOF) is ignored.

	return nil
}

// requireHeader checks the fields a data section depends on.
func (ps *parser) requireHeader(section string) error {
	switch {
	case ps.size < 0:
		return malformedf(ps.line, "%s before DIMENSION", section)
	case ps.problemType == TypeUnknown:
		return malformedf(ps.line, "%s without a supported TYPE", section)
	case ps.weightType == WeightUnknown:
		return malformedf(ps.line, "%s without a supported EDGE_WEIGHT_TYPE", section)
	}

	return nil
}

// feedWeights folds the tokens of one line into the matrix in row-major order.
// Diagonal cells are forced to 0 whatever their literal value.
func (ps *parser) feedWeights(line string) error {
	if strings.HasPrefix(line, markerEOF) {
		return ps.closeWeights()
	}

	var (
		total = ps.size * ps.size
		v     float64
		err   error
	)
	for _, tok := range strings.Fields(line) {
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return malformedf(ps.line, "weight %q is not a number", tok)
		}
		if ps.filled == total {
			return malformedf(ps.line, "more than %d weights for DIMENSION %d", total, ps.size)
		}
		if ps.x == ps.y {
			v = 0
		} else if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return malformedf(ps.line, "weight %q at (%d,%d) is not a finite non-negative number", tok, ps.x, ps.y)
		}
		ps.data[ps.x*ps.size+ps.y] = v
		ps.filled++

		if ps.y == ps.size-1 {
			ps.x++
			ps.y = 0
		} else {
			ps.y++
		}
	}

	return nil
}

// closeWeights ends EDGE_WEIGHT_SECTION and builds the matrix.
func (ps *parser) closeWeights() error {
	if total := ps.size * ps.size; ps.filled != total {
		return malformedf(ps.line, "EDGE_WEIGHT_SECTION has %d weights, DIMENSION %d needs %d", ps.filled, ps.size, total)
	}
	m, err := matrix.NewDenseOf(ps.size, ps.size, ps.data)
	if err != nil {
		return malformedf(ps.line, "%v", err)
	}
	ps.weights, ps.data = m, nil
	ps.state = stateDone

	return nil
}

// feedCoords appends one "index x y" point. The index column is read but
// not used for addressing: points keep file order.
func (ps *parser) feedCoords(line string) error {
	if strings.HasPrefix(line, markerEOF) {
		return ps.closeCoords()
	}
	if line == "" {
		return nil
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return malformedf(ps.line, "coordinate line %q needs index x y", line)
	}

	var (
		vals [3]float64
		err  error
		i    int
	)
	for i = 0; i < 3; i++ {
		if vals[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return malformedf(ps.line, "coordinate %q is not a number", fields[i])
		}
		if math.IsNaN(vals[i]) || math.IsInf(vals[i], 0) {
			return malformedf(ps.line, "coordinate %q is not finite", fields[i])
		}
	}
	if len(ps.points) == ps.size {
		return malformedf(ps.line, "more than %d coordinates for DIMENSION %d", ps.size, ps.size)
	}
	// Coordinates are truncated to integers.
	ps.points = append(ps.points, Point{X: int(vals[1]), Y: int(vals[2])})

	return nil
}

// closeCoords ends NODE_COORD_SECTION and derives the Euclidean matrix.
func (ps *parser) closeCoords() error {
	if len(ps.points) != ps.size {
		return malformedf(ps.line, "NODE_COORD_SECTION has %d points, DIMENSION is %d", len(ps.points), ps.size)
	}
	m, err := EuclideanWeights(ps.points)
	if err != nil {
		return malformedf(ps.line, "%v", err)
	}
	ps.weights, ps.points = m, nil
	ps.state = stateDone

	return nil
}

// finish closes a section left open at end of input and builds the Problem.
func (ps *parser) finish() (*Problem, error) {
	var err error
	switch ps.state {
	case stateWeights:
		err = ps.closeWeights()
	case stateCoords:
		err = ps.closeCoords()
	case stateHeader:
		err = malformedf(ps.line, "no %s or %s", sectionWeights, sectionCoords)
	}
	if err != nil {
		return nil, err
	}

	p, err := New(ps.name, ps.comment, ps.weights, ps.weightType, ps.problemType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInstance, err)
	}

	return p, nil
}

// value returns the trimmed text after key.
func value(line, key string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, key))
}
