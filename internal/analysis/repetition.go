package analysis

import (
	"github.com/aditya-r-m/twisty-tesseract"
)

// Cancellation represents a move directly followed by its inverse.
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
	TsMs   int64  `json:"ts_ms"`
}

// Run represents the same move repeated back to back. Every move has
// order four, so three in a row equal one inverse and four do nothing.
type Run struct {
	StartIndex int    `json:"start_index"`
	Move       string `json:"move"`
	Count      int    `json:"count"`
	TsMs       int64  `json:"ts_ms"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation `json:"immediate_cancellations"`
	Runs                   []Run          `json:"runs"`
	TotalWastedMoves       int            `json:"total_wasted_moves"`
}

// AnalyzeRepetitions finds wasted motion in a move sequence.
func AnalyzeRepetitions(steps []Step) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		Runs:                   []Run{},
	}

	for i := 0; i+1 < len(steps); i++ {
		m1, m2 := steps[i].Move, steps[i+1].Move
		if m1.Inverse() == m2 {
			// Pairs do not overlap: in A A' A only the first two cancel.
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
				TsMs:   steps[i].TsMs,
			})
			i++
		}
	}

	for i := 0; i < len(steps); {
		j := i + 1
		for j < len(steps) && steps[j].Move == steps[i].Move {
			j++
		}
		if n := j - i; n >= 3 {
			report.Runs = append(report.Runs, Run{
				StartIndex: i,
				Move:       steps[i].Move.Notation(),
				Count:      n,
				TsMs:       steps[i].TsMs,
			})
		}
		i = j
	}

	report.TotalWastedMoves = len(steps) - ReducedLength(steps)
	return report
}

// turn is a move applied count quarter turns, 1 to 3.
type turn struct {
	move  tesseract.Move
	count int
}

// ReducedLength returns the length of steps once adjacent repeats and
// inverses are folded together. A move and its inverse count as +1 and -1
// turns of the same move, so A A A A' reduces to A A. Folding continues
// across a cancelled block: A B B' A reduces to A A.
func ReducedLength(steps []Step) int {
	var stack []turn
	for _, st := range steps {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			delta := 0
			switch st.Move {
			case top.move:
				delta = 1
			case top.move.Inverse():
				delta = 3
			}
			if delta != 0 {
				top.count = (top.count + delta) % 4
				if top.count == 0 {
					stack = stack[:n-1]
				}
				continue
			}
		}
		stack = append(stack, turn{move: st.Move, count: 1})
	}

	length := 0
	for _, t := range stack {
		length += [4]int{0, 1, 2, 1}[t.count]
	}
	return length
}

// moveTokens numbers every move for hashing.
var moveTokens = func() map[tesseract.Move]uint8 {
	tokens := make(map[tesseract.Move]uint8)
	for i, m := range tesseract.AllMoves() {
		tokens[m] = uint8(i)
	}
	return tokens
}()
