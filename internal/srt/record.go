package srt

import (
	"math"
	"strconv"
	"strings"
)

// SubtitleRecord is one parsed subtitle entry. Records are created by the
// parser with validated timestamps and non-empty sanitized text, and are
// never mutated afterwards. Indices are reproduced exactly as declared in
// the source file; no uniqueness or ordering is enforced.
type SubtitleRecord struct {
	Index     int
	StartTime string // HH:MM:SS.mmm
	EndTime   string // HH:MM:SS.mmm
	Text      string
}

// AsMapping projects the record into a generic key/value form for the
// rendering layer.
func (r SubtitleRecord) AsMapping() map[string]interface{} {
	return map[string]interface{}{
		"index":      r.Index,
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
		"text":       r.Text,
	}
}

// DurationSeconds returns end minus start in seconds, rounded to millisecond
// precision. A negative duration is returned as-is; records are never
// rejected or reordered for timing anomalies.
func (r SubtitleRecord) DurationSeconds() float64 {
	d := timeToSeconds(r.EndTime) - timeToSeconds(r.StartTime)
	return math.Round(d*1000) / 1000
}

// timeToSeconds converts an HH:MM:SS.mmm timestamp to total seconds.
func timeToSeconds(ts string) float64 {
	ts = strings.ReplaceAll(ts, ",", ".")
	parts := strings.SplitN(ts, ":", 3)
	if len(parts) != 3 {
		return 0
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.ParseFloat(parts[2], 64)

	return float64(hours)*3600 + float64(minutes)*60 + seconds
}
