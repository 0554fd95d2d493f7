package paramset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

var fieldSeparator = regexp.MustCompile(`[\s:=]+`)

// Parse reads a parameter file the way the GA engine does: fields are split on
// runs of whitespace, ':' or '='; lines that do not split into exactly a key
// and a value are ignored; a repeated key takes the last value.
func Parse(r io.Reader) (Params, error) {
	var lines []Params
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := splitFields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		lines = append(lines, Params{P(fields[0], fields[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read parameter line %d: %w", lineNo+1, err)
	}
	return Merge(lines...), nil
}

func ParseFile(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	params, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return params, nil
}

// splitFields drops trailing empty fields but keeps a leading one, so an
// indented line yields three fields and is skipped.
func splitFields(line string) []string {
	fields := fieldSeparator.Split(line, -1)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
