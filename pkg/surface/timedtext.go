package surface

import (
	"encoding/json"
	"fmt"
	"strings"
)

// timedText mirrors the caption-track JSON the platform serves: a list of
// timed events, each with text segments
type timedText struct {
	Events []struct {
		TStartMs    int64 `json:"tStartMs"`
		DDurationMs int64 `json:"dDurationMs"`
		Segs        []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// ParseTimedText extracts the joined transcript and the caption-derived
// duration in seconds from a timedtext response body. The duration is the
// end offset of the last timed event, an approximation of video length, not
// authoritative.
func ParseTimedText(data []byte) (transcript string, durationSeconds float64, err error) {
	var tt timedText
	if err := json.Unmarshal(data, &tt); err != nil {
		return "", 0, fmt.Errorf("parse timedtext: %w", err)
	}

	var texts []string
	var lastEndMs int64
	for _, event := range tt.Events {
		if end := event.TStartMs + event.DDurationMs; end > lastEndMs {
			lastEndMs = end
		}
		if len(event.Segs) == 0 {
			continue
		}
		var sb strings.Builder
		for _, seg := range event.Segs {
			sb.WriteString(seg.UTF8)
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			texts = append(texts, text)
		}
	}

	return strings.Join(texts, " "), float64(lastEndMs) / 1000.0, nil
}
