// Package input turns user-supplied text into assignment problems.
//
// Two encodings are accepted:
//
//   - YAML or JSON documents, either a bare matrix ([[4,1,3],[2,0,5]]), a
//     single problem (name, objective, matrix) or a list under "problems".
//   - Plain grids: one matrix row per line, cells separated by whitespace,
//     commas or semicolons, "#" comments, problems separated by "---".
//
// Every cell is parsed from its text, so a non-numeric cell is reported with
// its position before the solver is ever called. "inf" and "nan" parse and
// are left for the solver to reject.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hungarian/assignment"
)

// Format selects the decoder.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatGrid Format = "grid"
)

var (
	// ErrBadCell is wrapped by CellParseError.
	ErrBadCell = errors.New("input: cell is not a valid number")

	// ErrNoMatrix is returned when the input holds no problem at all.
	ErrNoMatrix = errors.New("input: no matrix found")

	// ErrUnknownFormat is returned for a Format outside the constants above.
	ErrUnknownFormat = errors.New("input: unknown format")
)

// CellParseError pins an unparsable cell. Row and Col are 0-based.
type CellParseError struct {
	Problem  string
	Row, Col int
	Text     string
}

func (e *CellParseError) Error() string {
	return fmt.Sprintf("input: problem %s: cell (%d, %d) %q is not a valid number", e.Problem, e.Row, e.Col, e.Text)
}

// Unwrap returns ErrBadCell.
func (e *CellParseError) Unwrap() error { return ErrBadCell }

// Problem is one cost matrix with its objective.
type Problem struct {
	Name      string
	Objective assignment.Objective
	Cost      [][]float64
}

// Load decodes every problem in r. Entries under problems: without an
// objective take the document-level one; anything still unset gets def.
// Unnamed problems are numbered from 1 in input order.
func Load(r io.Reader, format Format, def assignment.Objective) ([]Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	switch format {
	case FormatAuto:
		if looksLikeDocument(data) {
			return loadDocument(data, def)
		}
		return loadGrid(data, def)
	case FormatYAML, FormatJSON:
		return loadDocument(data, def)
	case FormatGrid:
		return loadGrid(data, def)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

var docKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s*:`)

// looksLikeDocument inspects the first meaningful line.
func looksLikeDocument(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") ||
			strings.HasPrefix(line, "- ") || docKey.MatchString(line)
	}

	return false
}

type problemDoc struct {
	Name      string     `yaml:"name"`
	Objective string     `yaml:"objective"`
	Matrix    [][]string `yaml:"matrix"`
}

type document struct {
	Name      string       `yaml:"name"`
	Objective string       `yaml:"objective"`
	Matrix    [][]string   `yaml:"matrix"`
	Problems  []problemDoc `yaml:"problems"`
}

func loadDocument(data []byte, def assignment.Objective) ([]Problem, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("input: decode: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrNoMatrix
	}

	var docs []problemDoc
	switch top := root.Content[0]; top.Kind {
	case yaml.SequenceNode:
		var m [][]string
		if err := top.Decode(&m); err != nil {
			return nil, fmt.Errorf("input: decode matrix: %w", err)
		}
		docs = []problemDoc{{Matrix: m}}
	case yaml.MappingNode:
		var doc document
		if err := top.Decode(&doc); err != nil {
			return nil, fmt.Errorf("input: decode: %w", err)
		}
		if doc.Matrix != nil {
			docs = append(docs, problemDoc{Name: doc.Name, Objective: doc.Objective, Matrix: doc.Matrix})
		}
		for _, d := range doc.Problems {
			if d.Objective == "" {
				d.Objective = doc.Objective
			}
			docs = append(docs, d)
		}
	default:
		return nil, ErrNoMatrix
	}
	if len(docs) == 0 {
		return nil, ErrNoMatrix
	}

	out := make([]Problem, 0, len(docs))
	for k, d := range docs {
		p := Problem{Name: norm.NFC.String(strings.TrimSpace(d.Name)), Objective: def}
		if p.Name == "" {
			p.Name = strconv.Itoa(k + 1)
		}
		if d.Objective != "" {
			obj, err := assignment.ParseObjective(d.Objective)
			if err != nil {
				return nil, fmt.Errorf("input: problem %s: %w", p.Name, err)
			}
			p.Objective = obj
		}
		cost, err := parseCells(p.Name, d.Matrix)
		if err != nil {
			return nil, err
		}
		p.Cost = cost
		out = append(out, p)
	}

	return out, nil
}

func loadGrid(data []byte, def assignment.Objective) ([]Problem, error) {
	var (
		out   []Problem
		cells [][]string
	)
	flush := func() error {
		if len(cells) == 0 {
			return nil
		}
		name := strconv.Itoa(len(out) + 1)
		cost, err := parseCells(name, cells)
		if err != nil {
			return err
		}
		out = append(out, Problem{Name: name, Objective: def, Cost: cost})
		cells = nil

		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "---" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if line == "" {
			continue
		}
		cells = append(cells, strings.FieldsFunc(line, isSeparator))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoMatrix
	}

	return out, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// parseCells converts text cells; the row structure is kept as is so that
// ragged input reaches the solver's shape check.
func parseCells(problem string, cells [][]string) ([][]float64, error) {
	out := make([][]float64, len(cells))
	for i, row := range cells {
		out[i] = make([]float64, len(row))
		for j, text := range row {
			v, err := parseCell(text)
			if err != nil {
				return nil, &CellParseError{Problem: problem, Row: i, Col: j, Text: text}
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// parseCell accepts Go float syntax plus the YAML spellings .inf and .nan.
func parseCell(text string) (float64, error) {
	s := strings.TrimSpace(text)
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		s = "+Inf"
	case "-.inf":
		s = "-Inf"
	case ".nan":
		s = "NaN"
	}

	return strconv.ParseFloat(s, 64)
}
