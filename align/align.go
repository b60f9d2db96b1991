// Package align implements the pairwise approximate-alignment primitive the
// split engine treats as an external collaborator: semi-global ("infix")
// alignment of a short query as a substring of a longer target, returning
// the best match location and edit distance (or a distance-only verdict).
//
// No dependency in the reachable package set exposes infix alignment with
// location, so this is implemented directly, following the row-by-row
// dynamic-programming style of util.Levenshtein (github.com/grailbio/bio/util),
// generalized to free end-gaps on the target.
package align

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the alignment semantics. Only Infix (HW) is implemented;
// the enum exists so callers and tests can name the mode they expect,
// matching edlib's EDLIB_MODE_HW naming.
type Mode int

const (
	// Infix aligns query as a substring of target: free gaps at both ends
	// of target, query consumed in full.
	Infix Mode = iota
)

// Task controls how much work Align does beyond the edit distance itself.
type Task int

const (
	// TaskDistance computes only the edit distance.
	TaskDistance Task = iota
	// TaskLocation additionally computes the best match's start/end in target.
	TaskLocation
	// TaskPath additionally computes the alignment operations.
	TaskPath
)

// Op is a single edit-distance alignment operation.
type Op uint8

const (
	OpMatch Op = iota
	OpMismatch
	OpInsert // consumes query only (gap in target)
	OpDelete // consumes target only (gap in query)
)

// Status is the aligner's call-level outcome, mirroring edlib's status
// codes: a status error is distinct from "no match within threshold".
type Status int

const (
	StatusOK Status = iota
	StatusError
)

// Config configures one Align call. MaxEditDistance of -1 means unbounded.
type Config struct {
	MaxEditDistance int
	Mode            Mode
	Task            Task
}

// Result is the outcome of one Align call. When Status is StatusOK and
// EditDistance is -1, no match within MaxEditDistance was found — callers
// must treat this identically to a non-OK status ("no match"), per the
// split engine's error-handling policy.
type Result struct {
	Status       Status
	EditDistance int
	Start        int // inclusive start of best match in target (Task >= TaskLocation)
	End          int // exclusive end of best match in target (Task >= TaskLocation)
	Ops          []Op
}

// Align aligns query as an infix of target under cfg, allocating and
// freeing its working matrix on every call (and on every early-return path,
// including the degenerate empty-input ones below) — Go's GC makes the
// "free on every path" contract automatic, but the shape of the contract
// (no leaked native resource across an error path) still matters because
// Align is called from hot per-read worker loops.
func Align(query, target string, cfg Config) (Result, error) {
	if cfg.Mode != Infix {
		return Result{}, errors.New("align: only infix (HW) mode is implemented")
	}
	if len(query) == 0 {
		return Result{Status: StatusError}, nil
	}
	if len(target) == 0 {
		return Result{Status: StatusOK, EditDistance: -1}, nil
	}

	m, n := len(query), len(target)
	// dp[i][j]: edit distance aligning query[:i] against a suffix of
	// target ending at position j, with free start gaps on target (row 0
	// is all zeros: the alignment may start anywhere in target).
	dp := make([][]int32, m+1)
	for i := range dp {
		dp[i] = make([]int32, n+1)
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = 0
	}
	for i := 1; i <= m; i++ {
		dp[i][0] = int32(i)
	}
	for i := 1; i <= m; i++ {
		qc := query[i-1]
		row, prev := dp[i], dp[i-1]
		for j := 1; j <= n; j++ {
			cost := int32(1)
			if qc == target[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost // diagonal: match/mismatch
			if v := prev[j] + 1; v < best {
				best = v // down: consume query only
			}
			if v := row[j-1] + 1; v < best {
				best = v // right: consume target only
			}
			row[j] = best
		}
	}

	bestDist := int32(-1)
	bestEnd := -1
	for j := 0; j <= n; j++ {
		if bestEnd == -1 || dp[m][j] < bestDist {
			bestDist = dp[m][j]
			bestEnd = j
		}
	}

	if cfg.MaxEditDistance >= 0 && int(bestDist) > cfg.MaxEditDistance {
		return Result{Status: StatusOK, EditDistance: -1}, nil
	}

	res := Result{Status: StatusOK, EditDistance: int(bestDist)}
	if cfg.Task >= TaskLocation {
		start, ops := traceback(dp, query, target, bestEnd)
		res.Start = start
		res.End = bestEnd
		if cfg.Task == TaskPath {
			res.Ops = ops
		}
	}
	return res, nil
}

// FormatDotPlot renders res (which must come from a Task == TaskPath call)
// as a three-line ASCII alignment trace: the query row, a |/* row marking
// matches against everything else, and the target row, in the style of the
// original implementation's print_alignment.
func FormatDotPlot(query, target string, res Result) string {
	qi, ti := 0, res.Start
	var top, mid, bot strings.Builder
	for _, op := range res.Ops {
		switch op {
		case OpMatch:
			top.WriteByte(query[qi])
			mid.WriteByte('|')
			bot.WriteByte(target[ti])
			qi++
			ti++
		case OpMismatch:
			top.WriteByte(query[qi])
			mid.WriteByte('*')
			bot.WriteByte(target[ti])
			qi++
			ti++
		case OpInsert:
			top.WriteByte(query[qi])
			mid.WriteByte('*')
			bot.WriteByte('-')
			qi++
		case OpDelete:
			top.WriteByte('-')
			mid.WriteByte('*')
			bot.WriteByte(target[ti])
			ti++
		}
	}
	return top.String() + "\n" + mid.String() + "\n" + bot.String()
}

// Distance reports only the edit distance of the best infix alignment of
// query within target, or -1 if none scores within maxEditDistance
// (maxEditDistance < 0 means unbounded).
func Distance(query, target string, maxEditDistance int) (int, error) {
	res, err := Align(query, target, Config{MaxEditDistance: maxEditDistance, Mode: Infix, Task: TaskDistance})
	if err != nil {
		return -1, err
	}
	return res.EditDistance, nil
}

// traceback walks dp backwards from (len(query), end) to recover the best
// match's start column and, incidentally, its operation path.
func traceback(dp [][]int32, query, target string, end int) (start int, ops []Op) {
	i, j := len(query), end
	for i > 0 {
		if j > 0 && dp[i][j] == dp[i-1][j-1] && query[i-1] == target[j-1] {
			ops = append(ops, OpMatch)
			i--
			j--
			continue
		}
		if j > 0 && dp[i][j] == dp[i-1][j-1]+1 {
			ops = append(ops, OpMismatch)
			i--
			j--
			continue
		}
		if dp[i][j] == dp[i-1][j]+1 {
			ops = append(ops, OpInsert)
			i--
			continue
		}
		// dp[i][j] == dp[i][j-1]+1
		ops = append(ops, OpDelete)
		j--
	}
	// reverse ops into forward order
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return j, ops
}
