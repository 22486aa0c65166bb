package vector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const emptyField = "-"

func encodeField(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

func decodeField(s string) string {
	if s == emptyField {
		return ""
	}
	return s
}

// String returns v in its line format.
func (v Vector) String() string {
	return fmt.Sprintf("%s %s %s %d %s", v.Op, encodeField(v.X),
		encodeField(v.Y), v.N, encodeField(v.Want))
}

// Write writes vs to w, one per line.
func Write(w io.Writer, vs []Vector) error {
	bw := bufio.NewWriter(w)
	for _, v := range vs {
		if _, err := bw.WriteString(v.String() + "\n"); err != nil {
			return errors.Wrap(err, "write vector")
		}
	}
	return errors.Wrap(bw.Flush(), "flush vectors")
}

// parseLine decodes a single vector line.
func parseLine(line string) (Vector, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Vector{}, errors.Errorf("expected 5 fields, got %d", len(fields))
	}
	op, err := ParseOp(fields[0])
	if err != nil {
		return Vector{}, err
	}
	n, err := strconv.Atoi(fields[3])
	if err != nil {
		return Vector{}, errors.Wrap(err, "square count")
	}
	return Vector{
		Op:   op,
		X:    decodeField(fields[1]),
		Y:    decodeField(fields[2]),
		N:    n,
		Want: decodeField(fields[4]),
	}, nil
}

// Read parses vectors written by Write. Blank lines and lines starting with
// '#' are skipped.
func Read(r io.Reader) ([]Vector, error) {
	var out []Vector
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read vectors")
	}
	log.Debugf("Read %d vectors", len(out))
	return out, nil
}
