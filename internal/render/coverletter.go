package render

import (
	"fmt"
	"strings"

	"github.com/docforge/docforge/internal/types"
)

// buildCoverLetter renders the single cover letter layout: sender header,
// recipient block, pre-line body, then closing and signature.
func buildCoverLetter(letter types.CoverLetter, t Theme) string {
	var b strings.Builder
	b.WriteString(`<div class="page cover-letter" style="padding:40px;font-family:Arial,sans-serif;line-height:1.6;">`)

	b.WriteString(`<div style="display:flex;justify-content:space-between;align-items:center;margin-bottom:20px;">`)
	b.WriteString(`<div>`)
	fmt.Fprintf(&b, `<h1 style="margin:0;font-size:26px;font-weight:bold;color:%s;">%s</h1>`, t.Primary, esc(letter.Sender.Name))
	fmt.Fprintf(&b, `<p style="margin:0;font-size:14px;color:#666;">%s</p>`, esc(letter.Title))
	b.WriteString(`</div>`)
	b.WriteString(`<div style="text-align:right;font-size:12px;color:#444;">`)
	fmt.Fprintf(&b, `<div>📧%s</div>`, esc(letter.Sender.Email))
	fmt.Fprintf(&b, `<div>📞%s</div>`, esc(letter.Sender.Phone))
	fmt.Fprintf(&b, `<div>📍%s</div>`, esc(letter.Sender.Location))
	b.WriteString(`</div></div>`)

	fmt.Fprintf(&b, `<h2 style="margin:0 0 6px 0;font-size:16px;font-weight:bold;border-bottom:2px solid %s;padding-bottom:4px;">COVER LETTER</h2>`, t.Primary)

	b.WriteString(`<div style="margin:20px 0;font-size:13px;">`)
	fmt.Fprintf(&b, `<div>%s</div>`, esc(letter.Date))
	fmt.Fprintf(&b, `<div>%s</div>`, esc(letter.Recipient.Name))
	fmt.Fprintf(&b, `<div>%s</div>`, esc(letter.Recipient.Company))
	fmt.Fprintf(&b, `<div>%s</div>`, esc(letter.Recipient.Address))
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div style="margin:20px 0;font-size:13px;white-space:pre-line;">%s</div>`, esc(letter.Body))

	b.WriteString(`<div style="margin-top:40px;font-size:13px;">`)
	fmt.Fprintf(&b, `<div>%s,</div>`, esc(letter.Closing))
	fmt.Fprintf(&b, `<div style="margin-top:40px;font-weight:bold;">%s</div>`, esc(letter.Signature))
	b.WriteString(`</div></div>`)
	return b.String()
}
