// Package export turns rendered document markup into PDF bytes by driving a
// headless Chrome instance.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper dimensions and the fixed page margin, in inches.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 20.0 / 25.4 // 20mm
)

// DefaultPrintTimeout bounds a single launch/navigate/print cycle.
const DefaultPrintTimeout = 90 * time.Second

// ChromeEngine prints HTML to PDF with a dedicated headless Chrome process
// per call. Nothing is pooled or shared: the process is launched for one
// request and torn down on every exit path.
type ChromeEngine struct {
	// ExecPath overrides the Chrome binary location (CHROME_PATH).
	ExecPath string
	// Timeout bounds the whole print cycle. Zero means DefaultPrintTimeout.
	Timeout time.Duration
}

// NewChromeEngine builds an engine using the CHROME_PATH environment
// variable when set.
func NewChromeEngine() *ChromeEngine {
	return &ChromeEngine{ExecPath: os.Getenv("CHROME_PATH")}
}

// PrintPDF renders the given HTML document to A4 PDF bytes with 20mm
// margins and background graphics enabled.
func (e *ChromeEngine) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	// Chrome navigates to a file URL rather than a data URL; large documents
	// overflow the data URL length limit.
	tmpDir, err := os.MkdirTemp("", "docforge-")
	if err != nil {
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rasterization failed: %w", err)
	}
	return pdf, nil
}
