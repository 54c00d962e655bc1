// Package analysis computes statistics over journaled move sequences.
package analysis

import (
	"github.com/aditya-r-m/twisty-tesseract"
)

// Step is one committed move and its time since session start.
type Step struct {
	Move tesseract.Move
	TsMs int64
}

// SessionSummary contains statistics for a single session.
type SessionSummary struct {
	SessionID         string                    `json:"session_id"`
	DurationMs        int64                     `json:"duration_ms"`
	TotalMoves        int                       `json:"total_moves"`
	NetMoves          int                       `json:"net_moves"`
	MovesPerSecond    float64                   `json:"moves_per_second"`
	LongestPauseMs    int64                     `json:"longest_pause_ms"`
	PauseCountOver    int                       `json:"pause_count_over_threshold"`
	AvgMoveDurationMs float64                   `json:"avg_move_duration_ms"`
	LayerCounts       [4]int                    `json:"layer_counts"`
	AxisCounts        [tesseract.Dimensions]int `json:"axis_counts"`
	Final             tesseract.Progress        `json:"final"`
	Repetitions       *RepetitionReport         `json:"repetitions"`
	NGrams            *NGramReport              `json:"ngrams,omitempty"`
}

// PauseThresholdMs is the gap that counts as a pause.
const PauseThresholdMs = 1500

// Summarize computes the summary of a session's steps. durationMs is the
// recorded session length; zero falls back to the last step's timestamp.
func Summarize(sessionID string, steps []Step, durationMs int64) *SessionSummary {
	if durationMs <= 0 && len(steps) > 0 {
		durationMs = steps[len(steps)-1].TsMs
	}

	s := &SessionSummary{
		SessionID:         sessionID,
		DurationMs:        durationMs,
		TotalMoves:        len(steps),
		MovesPerSecond:    CalculateMPS(steps, durationMs),
		LongestPauseMs:    FindLongestPause(steps),
		PauseCountOver:    CountPausesOver(steps, PauseThresholdMs),
		AvgMoveDurationMs: CalculateAvgMoveDuration(steps),
		Repetitions:       AnalyzeRepetitions(steps),
		NGrams:            MineNGrams(steps, 2, 6, 5),
	}
	s.NetMoves = s.TotalMoves - s.Repetitions.TotalWastedMoves

	state := tesseract.NewState()
	actions := tesseract.New().Actions()
	for _, st := range steps {
		s.LayerCounts[st.Move.Layer]++
		s.AxisCounts[st.Move.Axis]++
		state = state.ApplyMove(actions, st.Move)
	}
	s.Final = tesseract.ProgressOf(state)

	return s
}

// PauseInfo represents a pause between moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// AnalyzePauses finds all significant pauses in a move sequence.
func AnalyzePauses(steps []Step, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(steps); i++ {
		gap := steps[i].TsMs - steps[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           steps[i-1].TsMs,
			})
		}
	}

	return pauses
}

// CalculateMPS calculates moves per second.
func CalculateMPS(steps []Step, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(len(steps)) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(steps []Step) float64 {
	if len(steps) < 2 {
		return 0
	}

	totalGap := steps[len(steps)-1].TsMs - steps[0].TsMs
	return float64(totalGap) / float64(len(steps)-1)
}

// FindLongestPause finds the longest gap between consecutive moves.
func FindLongestPause(steps []Step) int64 {
	var longest int64

	for i := 1; i < len(steps); i++ {
		gap := steps[i].TsMs - steps[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// CountPausesOver counts pauses over a threshold.
func CountPausesOver(steps []Step, thresholdMs int64) int {
	return len(AnalyzePauses(steps, thresholdMs+1))
}
