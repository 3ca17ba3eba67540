package surface_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortscope/shortscope/pkg/surface"
	"github.com/shortscope/shortscope/pkg/surface/mocks"
)

func TestExtract(t *testing.T) {
	t.Run("full extraction", func(t *testing.T) {
		mockSurface := &mocks.SurfaceMock{
			CurrentURLFunc: func() (string, error) {
				return "https://www.youtube.com/shorts/vid123", nil
			},
			TextFunc: func(selector string) (string, bool) {
				switch selector {
				case surface.SelectorTitle:
					return "Strikes hit the region overnight", true
				case surface.SelectorChannel:
					return "World News Daily", true
				}
				return "", false
			},
			CapturedTimedTextFunc: func() []surface.Captured {
				return []surface.Captured{
					{
						URL:  "https://www.youtube.com/api/timedtext?v=vid123&lang=en",
						Body: []byte(`{"events":[{"tStartMs":0,"dDurationMs":4000,"segs":[{"utf8":"heavy fighting continues"}]}]}`),
					},
				}
			},
		}

		ext, err := surface.Extract(mockSurface)
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/shorts/vid123", ext.URL)
		assert.Equal(t, "Strikes hit the region overnight", ext.Title)
		assert.Equal(t, "World News Daily", ext.Channel)
		assert.Equal(t, "heavy fighting continues", ext.Transcript)
		assert.InDelta(t, 4.0, ext.DurationSeconds, 0.001)
	})

	t.Run("selector misses leave fields absent", func(t *testing.T) {
		mockSurface := &mocks.SurfaceMock{
			CurrentURLFunc: func() (string, error) {
				return "https://www.youtube.com/shorts/vid456", nil
			},
			TextFunc: func(selector string) (string, bool) { return "", false },
			CapturedTimedTextFunc: func() []surface.Captured {
				return nil
			},
		}

		ext, err := surface.Extract(mockSurface)
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/shorts/vid456", ext.URL)
		assert.Empty(t, ext.Title)
		assert.Empty(t, ext.Channel)
		assert.Empty(t, ext.Transcript)
		assert.Zero(t, ext.DurationSeconds)
	})

	t.Run("captions for another video ignored", func(t *testing.T) {
		mockSurface := &mocks.SurfaceMock{
			CurrentURLFunc: func() (string, error) {
				return "https://www.youtube.com/shorts/current1", nil
			},
			TextFunc: func(selector string) (string, bool) { return "", false },
			CapturedTimedTextFunc: func() []surface.Captured {
				return []surface.Captured{
					{URL: "https://www.youtube.com/api/timedtext?v=previous0", Body: []byte(`{"events":[]}`)},
				}
			},
		}

		ext, err := surface.Extract(mockSurface)
		require.NoError(t, err)
		assert.Empty(t, ext.Transcript)
	})

	t.Run("malformed caption body skipped", func(t *testing.T) {
		mockSurface := &mocks.SurfaceMock{
			CurrentURLFunc: func() (string, error) {
				return "https://www.youtube.com/shorts/vid789", nil
			},
			TextFunc: func(selector string) (string, bool) { return "", false },
			CapturedTimedTextFunc: func() []surface.Captured {
				return []surface.Captured{
					{URL: "https://www.youtube.com/api/timedtext?v=vid789&kind=asr", Body: []byte(`not json`)},
					{
						URL:  "https://www.youtube.com/api/timedtext?v=vid789&lang=en",
						Body: []byte(`{"events":[{"tStartMs":0,"dDurationMs":1000,"segs":[{"utf8":"recovered"}]}]}`),
					},
				}
			},
		}

		ext, err := surface.Extract(mockSurface)
		require.NoError(t, err)
		assert.Equal(t, "recovered", ext.Transcript)
	})

	t.Run("url lookup failure is fatal", func(t *testing.T) {
		mockSurface := &mocks.SurfaceMock{
			CurrentURLFunc: func() (string, error) {
				return "", errors.New("page gone")
			},
		}

		_, err := surface.Extract(mockSurface)
		require.Error(t, err)
	})

	t.Run("non-shorts url skips transcript lookup", func(t *testing.T) {
		mockSurface := &mocks.SurfaceMock{
			CurrentURLFunc: func() (string, error) {
				return "https://www.youtube.com/", nil
			},
			TextFunc: func(selector string) (string, bool) { return "", false },
			CapturedTimedTextFunc: func() []surface.Captured {
				t.Fatal("captured buffer should not be consulted without a video id")
				return nil
			},
		}

		ext, err := surface.Extract(mockSurface)
		require.NoError(t, err)
		assert.Empty(t, ext.Transcript)
		assert.Empty(t, mockSurface.CapturedTimedTextCalls())
	})
}
