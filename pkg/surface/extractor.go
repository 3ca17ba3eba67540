package surface

import (
	"strings"

	"github.com/go-pkgz/lgr"
)

// CSS selectors for the shorts player surface. These track the platform's
// markup and are the part most likely to rot.
const (
	SelectorPlayer  = "ytd-shorts, ytd-reel-video-renderer"
	SelectorTitle   = "h2.ytShortsVideoTitleViewModelShortsVideoTitle"
	SelectorChannel = ".ytReelChannelBarViewModelChannelName a"
	SelectorLike    = `button[aria-label*="like this video"]`
)

// Extraction holds the per-item signals scraped from the surface. Empty
// string / zero duration mean the signal was absent, which is a normal
// outcome, not a failure.
type Extraction struct {
	URL             string
	Title           string
	Channel         string
	Transcript      string
	DurationSeconds float64
}

// Extract scrapes the item currently in view. Individual selector misses
// leave the field absent rather than failing the item; only the url lookup
// is mandatory.
func Extract(sfc Surface) (Extraction, error) {
	url, err := sfc.CurrentURL()
	if err != nil {
		return Extraction{}, err
	}

	ext := Extraction{URL: url}
	if title, ok := sfc.Text(SelectorTitle); ok {
		ext.Title = title
	}
	if channel, ok := sfc.Text(SelectorChannel); ok {
		ext.Channel = channel
	}

	ext.Transcript, ext.DurationSeconds = transcriptFor(sfc, videoIDToken(url))
	return ext, nil
}

// transcriptFor scans buffered timedtext responses for the one belonging to
// the given video. Missing captions are normal (the platform serves none for
// many items); a malformed body is logged and skipped.
func transcriptFor(sfc Surface, videoID string) (string, float64) {
	if videoID == "" {
		return "", 0
	}
	for _, captured := range sfc.CapturedTimedText() {
		if !strings.Contains(captured.URL, videoID) {
			continue
		}
		transcript, duration, err := ParseTimedText(captured.Body)
		if err != nil {
			lgr.Printf("[WARN] malformed timedtext for %s: %v", videoID, err)
			continue
		}
		return transcript, duration
	}
	return "", 0
}

func videoIDToken(url string) string {
	if _, after, found := strings.Cut(url, "/shorts/"); found {
		if i := strings.IndexAny(after, "?&#"); i >= 0 {
			return after[:i]
		}
		return after
	}
	return ""
}
