package surface

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/shortscope/shortscope/pkg/config"
)

// textLookupTimeout bounds per-selector lookups so a missing title or
// channel degrades quickly instead of stalling the whole session
const textLookupTimeout = 3 * time.Second

// Browser drives a real Chrome instance as the feed surface. Each viewer
// profile gets its own user-data dir so the platform sees a persistent
// logged-in account.
type Browser struct {
	cfg     config.BrowserConfig
	browser *rod.Browser
	page    *rod.Page
	router  *rod.HijackRouter

	mu       sync.Mutex
	captured []Captured

	closeOnce sync.Once
	closeErr  error
}

// NewBrowser launches Chrome with the profile's user-data dir and starts
// capturing caption-track responses.
func NewBrowser(ctx context.Context, cfg config.BrowserConfig, profileID string) (*Browser, error) {
	userDataDir, err := filepath.Abs(filepath.Join(cfg.ProfilesDir, profileID))
	if err != nil {
		return nil, fmt.Errorf("resolve profile dir: %w", err)
	}

	l := launcher.New().
		Headless(cfg.Headless).
		UserDataDir(userDataDir).
		Set("window-size", fmt.Sprintf("%d,%d", cfg.ViewportWidth, cfg.ViewportHeight)).
		Set("mute-audio").
		Set("disable-notifications").
		Set("no-first-run").
		Set("no-default-browser-check")
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             cfg.ViewportWidth,
		Height:            cfg.ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	b := &Browser{cfg: cfg, browser: browser, page: page}

	// capture only caption-track traffic, everything else passes through
	b.router = page.HijackRequests()
	if err := b.router.Add("*timedtext*", proto.NetworkResourceTypeXHR, b.captureTimedText); err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("add timedtext hijack: %w", err)
	}
	go b.router.Run()

	return b, nil
}

func (b *Browser) captureTimedText(h *rod.Hijack) {
	if err := h.LoadResponse(http.DefaultClient, true); err != nil {
		lgr.Printf("[WARN] load timedtext response: %v", err)
		return
	}
	b.mu.Lock()
	b.captured = append(b.captured, Captured{
		URL:  h.Request.URL().String(),
		Body: []byte(h.Response.Body()),
	})
	b.mu.Unlock()
}

// Load navigates to the given feed entry point
func (b *Browser) Load(ctx context.Context, url string) error {
	if err := b.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// WaitReady blocks until the shorts player renders, ErrFeedLoadTimeout on
// timeout
func (b *Browser) WaitReady(ctx context.Context, timeout time.Duration) error {
	if _, err := b.page.Context(ctx).Timeout(timeout).Element(SelectorPlayer); err != nil {
		return fmt.Errorf("%w: %v", ErrFeedLoadTimeout, err)
	}
	return nil
}

// CurrentURL returns the url of the item currently in view
func (b *Browser) CurrentURL() (string, error) {
	info, err := b.page.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

// Text returns the trimmed text of the first matching element, false when
// the selector finds nothing in time
func (b *Browser) Text(selector string) (string, bool) {
	el, err := b.page.Timeout(textLookupTimeout).Element(selector)
	if err != nil {
		return "", false
	}
	text, err := el.Text()
	if err != nil {
		return "", false
	}
	return text, true
}

// Advance moves to the next item by keyboard, the same way a viewer swipes
func (b *Browser) Advance(ctx context.Context) error {
	if err := b.page.Context(ctx).Keyboard.Press(input.ArrowDown); err != nil {
		return fmt.Errorf("advance feed: %w", err)
	}
	return nil
}

// Engage clicks the like button unless it is already pressed. Best effort:
// a missing button is logged, not fatal.
func (b *Browser) Engage(ctx context.Context) error {
	el, err := b.page.Context(ctx).Timeout(textLookupTimeout).Element(SelectorLike)
	if err != nil {
		lgr.Printf("[WARN] like button not found: %v", err)
		return nil
	}
	pressed, err := el.Attribute("aria-pressed")
	if err == nil && pressed != nil && *pressed == "true" {
		return nil
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click like: %w", err)
	}
	return nil
}

// CapturedTimedText returns caption responses observed since the last clear
func (b *Browser) CapturedTimedText() []Captured {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Captured, len(b.captured))
	copy(out, b.captured)
	return out
}

// ClearCaptured drops buffered caption responses
func (b *Browser) ClearCaptured() {
	b.mu.Lock()
	b.captured = nil
	b.mu.Unlock()
}

// Close stops capture and shuts the browser down. Safe to call repeatedly.
func (b *Browser) Close() error {
	b.closeOnce.Do(func() {
		if b.router != nil {
			_ = b.router.Stop()
		}
		if err := b.browser.Close(); err != nil {
			b.closeErr = fmt.Errorf("close browser: %w", err)
		}
	})
	return b.closeErr
}

// Login opens a non-headless browser on the profile's user-data dir so the
// operator can log into the platform by hand. Blocks until the context is
// cancelled; the saved profile is reused by later sessions.
func Login(ctx context.Context, cfg config.BrowserConfig, profileID, url string) error {
	cfg.Headless = false
	b, err := NewBrowser(ctx, cfg, profileID)
	if err != nil {
		return err
	}
	defer b.Close() //nolint:errcheck // best effort teardown

	if err := b.Load(ctx, url); err != nil {
		return err
	}

	lgr.Printf("[INFO] log into the platform in the opened browser, press ctrl+c when done")
	<-ctx.Done()
	return nil
}
