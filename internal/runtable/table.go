package runtable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrMissingColumn = errors.New("missing column")

// Column names the aggregator reads, in their normalised form.
const (
	ColRun               = "run"
	ColSource            = "source"
	ColGraphSize         = "graph_size"
	ColCompressionRate   = "compression_rate"
	ColElitismRate       = "elitism_rate"
	ColTournamentSize    = "tournament_size"
	ColMutationRate      = "mutation_rate"
	ColCrossoverRate     = "crossover_rate"
	ColMaximumDistance   = "maximum_distance"
	ColGlobalBestFitness = "global_best_fitness"
	ColRunBestFitness    = "run_best_fitness"
)

var (
	nonWord    = regexp.MustCompile(`[^\s\w]+`)
	whitespace = regexp.MustCompile(`\s+`)
	lower      = cases.Lower(language.Und)
)

// NormalizeHeader folds a header cell into a column key:
// "Global Best Fitness" becomes "global_best_fitness".
func NormalizeHeader(h string) string {
	h = lower.String(h)
	h = nonWord.ReplaceAllString(h, "")
	h = strings.TrimSpace(h)
	return whitespace.ReplaceAllString(h, "_")
}

// Table is one GA output file: a header, one row per generation and the
// optional metadata preamble written above the header.
type Table struct {
	Name    string
	Columns []string
	Meta    map[string]string
	Rows    []Row

	index map[string]int
}

type Row struct {
	Index  int
	Fields []string

	table *Table
}

type ReadOptions struct {
	Name string
}

func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f, ReadOptions{Name: filepath.Base(path)})
}

// Read parses a run table. Every record after the header is a row, including
// records whose fields are all empty, so row positions follow the generation
// count. Lines with no characters at all are skipped by the CSV reader.
func Read(in io.Reader, opts ReadOptions) (*Table, error) {
	br := bufio.NewReader(in)
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read run table %s: %w", opts.Name, err)
	}

	table := &Table{
		Name:  opts.Name,
		Meta:  map[string]string{},
		index: map[string]int{},
	}
	var body io.Reader = br
	if isPreamble(first) {
		table.Meta = parsePreamble(first)
	} else {
		body = io.MultiReader(strings.NewReader(first), br)
	}

	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read run table %s header: %w", opts.Name, err)
	}
	table.Columns = make([]string, len(header))
	for i, h := range header {
		key := NormalizeHeader(h)
		table.Columns[i] = key
		if key == "" {
			continue
		}
		if _, dup := table.index[key]; !dup {
			table.index[key] = i
		}
	}

	rows := make([]Row, 0, 1024)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read run table %s row %d: %w", opts.Name, len(rows)+1, err)
		}
		rows = append(rows, Row{
			Index:  len(rows),
			Fields: record,
			table:  table,
		})
	}
	table.Rows = rows
	return table, nil
}

// InHeader reports whether the column comes from the CSV header rather than
// the preamble.
func (t *Table) InHeader(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// String returns the raw cell, falling back to preamble metadata when the
// header lacks the column.
func (r Row) String(col string) (string, error) {
	if i, ok := r.table.index[col]; ok {
		if i >= len(r.Fields) {
			return "", nil
		}
		return strings.TrimSpace(r.Fields[i]), nil
	}
	if v, ok := r.table.Meta[col]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingColumn, col)
}

// Float parses the cell as a decimal number. A trailing '%' is ignored.
func (r Row) Float(col string) (float64, error) {
	raw, err := r.String(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse row %d column %s: %w", r.Index, col, err)
	}
	return v, nil
}

func (r Row) Int(col string) (int, error) {
	v, err := r.Float(col)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func isPreamble(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && !strings.Contains(line, ",") && strings.Contains(line, ":")
}

// parsePreamble reads "Key: Value; Key: Value" into normalised keys.
func parsePreamble(line string) map[string]string {
	meta := map[string]string{}
	for _, part := range strings.Split(strings.TrimSpace(line), ";") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		key = NormalizeHeader(key)
		if key == "" {
			continue
		}
		meta[key] = strings.TrimSpace(value)
	}
	return meta
}
