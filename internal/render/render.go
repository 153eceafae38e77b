// Package render writes batch outcomes as localized text, JSON or YAML.
//
// Text output is meant for people: 1-based pairs, localized labels and
// error messages. JSON and YAML keep 0-based assignments and the raw error
// strings so that scripts can rely on them.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hungarian/assignment"
	"github.com/katalvlaran/hungarian/internal/batch"
	"github.com/katalvlaran/hungarian/internal/input"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnsupported is returned by New for an unknown format or language.
var ErrUnsupported = errors.New("render: unsupported format or language")

// Renderer formats outcomes in one output format and language.
type Renderer struct {
	format string
	p      *message.Printer
}

// New returns a Renderer for format (text|json|yaml) and lang (en|ru).
func New(format, lang string) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupported)
	}
	tag, ok := languages[lang]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", lang, ErrUnsupported)
	}

	return &Renderer{format: format, p: message.NewPrinter(tag, message.Catalog(messages))}, nil
}

type record struct {
	Name       string   `json:"name" yaml:"name"`
	Objective  string   `json:"objective" yaml:"objective"`
	Status     string   `json:"status" yaml:"status"`
	N          int      `json:"n" yaml:"n"`
	Assignment []int    `json:"assignment,omitempty" yaml:"assignment,omitempty,flow"`
	Total      *float64 `json:"total,omitempty" yaml:"total,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

type report struct {
	Results []record `json:"results" yaml:"results"`
}

// Solved writes the outcomes of a solve run.
func (r *Renderer) Solved(w io.Writer, outs []batch.Outcome) error {
	if r.format != FormatText {
		return r.encode(w, outs, true)
	}

	var sb strings.Builder
	for k, o := range outs {
		if k > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.p.Sprintf(msgProblem, o.Problem.Name, o.Problem.Objective))
		sb.WriteByte('\n')
		if o.Err != nil {
			sb.WriteString(r.p.Sprintf(msgErrorLine, r.Message(o.Err)))
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(r.p.Sprintf(msgAssignment, fmt.Sprint(o.Result.Assignment)))
		sb.WriteByte('\n')
		sb.WriteString(r.p.Sprintf(msgPairs, r.pairs(o.Result)))
		sb.WriteByte('\n')
		sb.WriteString(r.p.Sprintf(msgTotal, formatTotal(o.Result.Total)))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Checked writes the outcomes of a validation-only run.
func (r *Renderer) Checked(w io.Writer, outs []batch.Outcome) error {
	if r.format != FormatText {
		return r.encode(w, outs, false)
	}

	var sb strings.Builder
	for _, o := range outs {
		if o.Err != nil {
			sb.WriteString(r.p.Sprintf(msgCheckFailed, o.Problem.Name, r.Message(o.Err)))
		} else {
			sb.WriteString(r.p.Sprintf(msgCheckOK, o.Problem.Name, o.N))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func (r *Renderer) encode(w io.Writer, outs []batch.Outcome, solved bool) error {
	rep := report{Results: make([]record, len(outs))}
	for k, o := range outs {
		rec := record{
			Name:      o.Problem.Name,
			Objective: o.Problem.Objective.String(),
			Status:    "ok",
			N:         o.N,
		}
		switch {
		case o.Err != nil:
			rec.Status = "error"
			rec.Error = o.Err.Error()
		case solved:
			total := o.Result.Total
			rec.Assignment = o.Result.Assignment
			rec.Total = &total
		}
		rep.Results[k] = rec
	}

	if r.format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		return enc.Close()
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

// Message returns a localized, human-readable description of err. Matrix
// positions are shown 1-based.
func (r *Renderer) Message(err error) string {
	var (
		shape *assignment.ShapeError
		value *assignment.ValueError
		size  *assignment.SizeError
		cell  *input.CellParseError
	)
	switch {
	case errors.As(err, &cell):
		return r.p.Sprintf(msgBadCell, cell.Problem, cell.Row+1, cell.Col+1, cell.Text)
	case errors.As(err, &shape):
		return r.p.Sprintf(msgShape, shape.Want, shape.Row+1, shape.Len)
	case errors.As(err, &value):
		if errors.Is(err, assignment.ErrUnsolvableObjective) {
			return r.p.Sprintf(msgUnsolvableAt, value.Row+1, value.Col+1)
		}
		return r.p.Sprintf(msgValue, formatTotal(value.Value), value.Row+1, value.Col+1)
	case errors.As(err, &size):
		return r.p.Sprintf(msgTooLarge, size.N, size.N, size.Limit)
	case errors.Is(err, assignment.ErrInvalidShape):
		return r.p.Sprintf(msgNotSquare)
	case errors.Is(err, assignment.ErrUnsolvableObjective):
		return r.p.Sprintf(msgUnsolvable)
	case errors.Is(err, input.ErrNoMatrix):
		return r.p.Sprintf(msgNoMatrix)
	default:
		return err.Error()
	}
}

// pairs lists row→column with 1-based indices.
func (r *Renderer) pairs(res assignment.Result) string {
	if len(res.Assignment) == 0 {
		return r.p.Sprintf(msgNone)
	}
	parts := make([]string, len(res.Assignment))
	for i, pr := range res.Pairs() {
		parts[i] = strconv.Itoa(pr[0]+1) + "→" + strconv.Itoa(pr[1]+1)
	}

	return strings.Join(parts, ", ")
}

func formatTotal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var languages = map[string]language.Tag{
	"en": language.English,
	"ru": language.Russian,
}
