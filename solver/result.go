package solver

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of one run. Part1 and Part2 are nil when the mode
// skipped them.
type Result struct {
	RunID    string        `json:"run_id"`
	Mode     Mode          `json:"mode"`
	Part1    *int64        `json:"part1,omitempty"`
	Part2    *int64        `json:"part2,omitempty"`
	Seeds    int64         `json:"seeds"`
	Segments int           `json:"segments"`
	Verified bool          `json:"verified"`
	Duration time.Duration `json:"duration"`
}

// Lines renders the answers as "part1: N" / "part2: N".
func (r *Result) Lines() []string {
	var lines []string
	if r.Part1 != nil {
		lines = append(lines, fmt.Sprintf("part1: %d", *r.Part1))
	}
	if r.Part2 != nil {
		lines = append(lines, fmt.Sprintf("part2: %d", *r.Part2))
	}
	return lines
}

func (r *Result) String() string {
	return strings.Join(r.Lines(), "\n")
}
