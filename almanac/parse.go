package almanac

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/kbukum/almanac/errors"
	"github.com/kbukum/almanac/rangemap"
	"github.com/kbukum/almanac/util"
)

const (
	seedsPrefix = "seeds:"
	maxLineSize = 1 << 20
)

// block is a stage being collected during parsing.
type block struct {
	name    string
	line    int
	entries []rangemap.Entry
}

// Load reads and parses the almanac at path.
func Load(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound("input file", path).WithCause(err)
		}
		return nil, errors.Internal(err).WithDetail("path", path)
	}
	defer f.Close()

	a, err := Parse(f)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			appErr.WithDetail("path", path)
		}
		return nil, err
	}
	return a, nil
}

// ParseString parses an almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads an almanac. The first non-blank line must be the seeds line;
// every following block starts with a label ending in ':' and continues
// with "dest source length" lines until a blank line or the next label.
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		lineNo    int
		seeds     []int64
		seenSeeds bool
		blocks    []block
		current   = -1
	)
	for sc.Scan() {
		lineNo++
		line := util.SanitizeLine(sc.Text())
		if line == "" {
			current = -1
			continue
		}

		if !seenSeeds {
			rest, ok := strings.CutPrefix(line, seedsPrefix)
			if !ok {
				return nil, errors.MissingField("seeds").WithDetail("line", lineNo)
			}
			vals, err := util.ParseInts(rest)
			if err != nil {
				return nil, errors.InvalidFormat("seeds", "whitespace-separated integers").
					WithDetail("line", lineNo).WithCause(err)
			}
			seeds, seenSeeds = vals, true
			continue
		}

		if strings.HasSuffix(line, ":") {
			blocks = append(blocks, block{name: stageName(line), line: lineNo})
			current = len(blocks) - 1
			continue
		}
		if current < 0 {
			return nil, errors.InvalidFormat(fmt.Sprintf("line %d", lineNo), "a stage label ending in ':'").
				WithDetail("line", lineNo)
		}

		e, err := parseEntry(line)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				appErr.WithDetails(map[string]any{"line": lineNo, "stage": blocks[current].name})
			}
			return nil, err
		}
		blocks[current].entries = append(blocks[current].entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Internal(err).WithDetail("line", lineNo)
	}
	if !seenSeeds {
		return nil, errors.MissingField("seeds")
	}

	stages := make([]rangemap.Stage, 0, len(blocks))
	for _, b := range blocks {
		st, err := rangemap.NewStage(b.name, b.entries...)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				appErr.WithDetail("line", b.line)
			}
			return nil, err
		}
		stages = append(stages, st)
	}
	return New(seeds, stages...), nil
}

// parseEntry reads "dest source length".
func parseEntry(line string) (rangemap.Entry, error) {
	vals, err := util.ParseIntsN(line, 3)
	if err != nil {
		return rangemap.Entry{}, errors.InvalidFormat("stage line", "three integers: dest source length").
			WithDetail("text", line).WithCause(err)
	}
	return rangemap.NewEntry(vals[0], vals[1], vals[2])
}

// stageName turns "seed-to-soil map:" into "seed-to-soil".
func stageName(label string) string {
	name := strings.TrimSuffix(label, ":")
	name = strings.TrimSuffix(name, " map")
	return strings.TrimSpace(name)
}
