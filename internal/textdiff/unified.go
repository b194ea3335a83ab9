package textdiff

import (
	"bytes"
	"fmt"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

const contextLines = 3

// Unified renders a positional diff result as a unified patch, grouping
// change runs into hunks with up to three context lines. Returns nil when
// the result contains no changes.
func Unified(res Result, origName, tailoredName string) ([]byte, error) {
	windows := hunkWindows(res)
	if len(windows) == 0 {
		return nil, nil
	}

	origAt, tailAt := lineOffsets(res)

	hunks := make([]*sgdiff.Hunk, 0, len(windows))
	for _, w := range windows {
		var body bytes.Buffer
		for _, op := range res[w.start:w.end] {
			switch op.Kind {
			case Same:
				body.WriteString(" " + op.Line + "\n")
			case Removed:
				body.WriteString("-" + op.Line + "\n")
			case Added:
				body.WriteString("+" + op.Line + "\n")
			case Changed:
				body.WriteString("-" + op.OriginalLine + "\n")
				body.WriteString("+" + op.TailoredLine + "\n")
			}
		}

		hunks = append(hunks, &sgdiff.Hunk{
			OrigStartLine: hunkStart(origAt[w.start], origAt[w.end]),
			OrigLines:     int32(origAt[w.end] - origAt[w.start]),
			NewStartLine:  hunkStart(tailAt[w.start], tailAt[w.end]),
			NewLines:      int32(tailAt[w.end] - tailAt[w.start]),
			Body:          body.Bytes(),
		})
	}

	out, err := sgdiff.PrintFileDiff(&sgdiff.FileDiff{
		OrigName: "a/" + origName,
		NewName:  "b/" + tailoredName,
		Hunks:    hunks,
	})
	if err != nil {
		return nil, fmt.Errorf("print unified diff: %w", err)
	}
	return out, nil
}

type window struct {
	start, end int
}

// hunkWindows groups non-Same ops whose gaps fit inside shared context into
// half-open index ranges over the result.
func hunkWindows(res Result) []window {
	var windows []window
	last := -1 // index of the latest change folded into the current window
	for i, op := range res {
		if op.Kind == Same {
			continue
		}
		if last >= 0 && i-last <= 2*contextLines {
			windows[len(windows)-1].end = min(len(res), i+1+contextLines)
		} else {
			start := max(0, i-contextLines)
			if len(windows) > 0 && start < windows[len(windows)-1].end {
				start = windows[len(windows)-1].end
			}
			windows = append(windows, window{start: start, end: min(len(res), i+1+contextLines)})
		}
		last = i
	}
	return windows
}

// lineOffsets returns, per result index, how many original and tailored
// lines the ops before that index consume.
func lineOffsets(res Result) (orig, tail []int) {
	orig = make([]int, len(res)+1)
	tail = make([]int, len(res)+1)
	for i, op := range res {
		orig[i+1] = orig[i]
		tail[i+1] = tail[i]
		if op.Kind != Added {
			orig[i+1]++
		}
		if op.Kind != Removed {
			tail[i+1]++
		}
	}
	return orig, tail
}

// hunkStart follows the git convention: an empty side anchors to the line
// before the hunk instead of the first line inside it.
func hunkStart(before, after int) int32 {
	if after == before {
		return int32(before)
	}
	return int32(before + 1)
}
