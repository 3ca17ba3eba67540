package domain

import (
	"fmt"
	"strings"
	"time"
)

// Scope identifies what a session was collected for: a specific conflict
// region during the training phase, or the home feed during measurement.
type Scope string

// ScopeHome is the fixed scope for measurement (home feed) sessions.
const ScopeHome Scope = "home"

// ItemRecord is one observed feed item. Exactly one of the two label fields
// is populated depending on phase: ConflictRelated for training records,
// RelatedRegion for measurement records (nil region pointer would mean an
// unlabeled record, an empty string means "classified, no region matched").
// Records are immutable once created and appended to a session in view order.
type ItemRecord struct {
	URL             string    `json:"url"`
	VideoID         string    `json:"video_id"`
	ExtractedAt     time.Time `json:"extracted_at"`
	Title           string    `json:"title,omitempty"`
	Channel         string    `json:"channel,omitempty"`
	Transcript      string    `json:"transcript,omitempty"`
	DurationSeconds float64   `json:"duration_seconds,omitempty"`

	ConflictRelated *bool   `json:"is_conflict_related,omitempty"`
	RelatedRegion   *string `json:"related_country,omitempty"`
}

// NewTrainingRecord creates a training-phase record labeled with a binary
// relatedness flag.
func NewTrainingRecord(url string, extractedAt time.Time, related bool) ItemRecord {
	return ItemRecord{
		URL:             url,
		VideoID:         VideoIDFromURL(url),
		ExtractedAt:     extractedAt,
		ConflictRelated: &related,
	}
}

// NewMeasurementRecord creates a measurement-phase record labeled with a
// region name, empty for "none".
func NewMeasurementRecord(url string, extractedAt time.Time, region string) ItemRecord {
	return ItemRecord{
		URL:           url,
		VideoID:       VideoIDFromURL(url),
		ExtractedAt:   extractedAt,
		RelatedRegion: &region,
	}
}

// IsTraining reports whether the record carries a training-phase label.
func (r *ItemRecord) IsTraining() bool { return r.ConflictRelated != nil }

// Related reports the training-phase relatedness flag, false when the record
// is not a training record.
func (r *ItemRecord) Related() bool {
	return r.ConflictRelated != nil && *r.ConflictRelated
}

// RegionLabel returns the conflict region this record counts toward. The
// second return is false for records with no region: training records,
// measurement records classified as "none" and unlabeled records.
func (r *ItemRecord) RegionLabel() (string, bool) {
	if r.RelatedRegion == nil || *r.RelatedRegion == "" {
		return "", false
	}
	return *r.RelatedRegion, true
}

// Validate checks the exactly-one-label invariant and that the video id
// matches the url.
func (r *ItemRecord) Validate() error {
	if r.ConflictRelated != nil && r.RelatedRegion != nil {
		return fmt.Errorf("record %s has both training and measurement labels", r.VideoID)
	}
	if r.ConflictRelated == nil && r.RelatedRegion == nil {
		return fmt.Errorf("record %s has no label", r.VideoID)
	}
	if r.URL != "" && r.VideoID != VideoIDFromURL(r.URL) {
		return fmt.Errorf("record video id %q does not match url %q", r.VideoID, r.URL)
	}
	return nil
}

// VideoIDFromURL extracts the video id from a shorts url, e.g.
// "https://www.youtube.com/shorts/abc123" -> "abc123". Query parameters
// are stripped; a url without a shorts path yields the url as-is.
func VideoIDFromURL(url string) string {
	id := url
	if _, after, found := strings.Cut(url, "/shorts/"); found {
		id = after
	}
	if i := strings.IndexAny(id, "?&#"); i >= 0 {
		id = id[:i]
	}
	return id
}
