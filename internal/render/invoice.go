package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docforge/docforge/internal/types"
)

// buildInvoice renders the invoice layout: issuer header, bill-to block,
// line-item table, totals box, and a notes footer. All monetary values are
// displayed exactly as provided.
func buildInvoice(inv types.Invoice, t Theme) string {
	var b strings.Builder
	b.WriteString(`<div class="page invoice">`)

	b.WriteString(`<header style="display:flex;justify-content:space-between;align-items:center;padding:20px 0;">`)
	b.WriteString(`<div>`)
	fmt.Fprintf(&b, `<h1 style="margin:0;font-size:24px;color:%s;">Invoice</h1>`, t.Primary)
	fmt.Fprintf(&b, `<p style="margin:6px 0 0 0;">Invoice #: %s</p>`, esc(inv.InvoiceNumber))
	fmt.Fprintf(&b, `<p style="margin:0;">Date: %s • Due: %s</p>`, esc(inv.Date), esc(inv.DueDate))
	b.WriteString(`</div>`)
	b.WriteString(`<div style="text-align:right;">`)
	fmt.Fprintf(&b, `<h3 style="margin:0;">%s</h3>`, esc(inv.From.Company))
	fmt.Fprintf(&b, `<p style="margin:6px 0 0 0;">%s</p>`, esc(inv.From.Address))
	fmt.Fprintf(&b, `<p style="margin:0;">%s • %s</p>`, esc(inv.From.Email), esc(inv.From.Phone))
	b.WriteString(`</div></header>`)

	billTo := inv.To.Name
	if billTo == "" {
		billTo = inv.To.Company
	}
	b.WriteString(`<section style="margin-top:20px;display:flex;justify-content:space-between;padding-bottom:10px;">`)
	b.WriteString(`<div>`)
	b.WriteString(`<h4 style="margin:0 0 6px 0;">Bill To</h4>`)
	fmt.Fprintf(&b, `<p style="margin:0;">%s</p>`, esc(billTo))
	fmt.Fprintf(&b, `<p style="margin:0;">%s</p>`, esc(inv.To.Address))
	contactLine := esc(inv.To.Email)
	if inv.To.Phone != "" {
		contactLine += " • " + esc(inv.To.Phone)
	}
	fmt.Fprintf(&b, `<p style="margin:0;">%s</p>`, contactLine)
	b.WriteString(`</div></section>`)

	b.WriteString(`<table style="width:100%;border-collapse:collapse;margin-top:16px;border:1px solid #eee;">`)
	b.WriteString(`<thead><tr style="background:#fafafa;">`)
	b.WriteString(`<th style="text-align:left;padding:8px;border-bottom:1px solid #eee;">#</th>`)
	b.WriteString(`<th style="text-align:left;padding:8px;border-bottom:1px solid #eee;">Description</th>`)
	b.WriteString(`<th style="text-align:center;padding:8px;border-bottom:1px solid #eee;">Qty</th>`)
	b.WriteString(`<th style="text-align:right;padding:8px;border-bottom:1px solid #eee;">Unit Price</th>`)
	b.WriteString(`<th style="text-align:right;padding:8px;border-bottom:1px solid #eee;">Total</th>`)
	b.WriteString(`</tr></thead><tbody>`)
	for i, it := range inv.Items {
		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td style="padding:6px 8px;border-bottom:1px solid #eee;">%d</td>`, i+1)
		fmt.Fprintf(&b, `<td style="padding:6px 8px;border-bottom:1px solid #eee;">%s</td>`, esc(it.Description))
		fmt.Fprintf(&b, `<td style="padding:6px 8px;border-bottom:1px solid #eee;text-align:center;">%s</td>`, esc(it.Quantity.String()))
		fmt.Fprintf(&b, `<td style="padding:6px 8px;border-bottom:1px solid #eee;text-align:right;">%s</td>`, formatMoney(it.UnitPrice))
		fmt.Fprintf(&b, `<td style="padding:6px 8px;border-bottom:1px solid #eee;text-align:right;">%s</td>`, formatMoney(it.Total))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(`<div style="display:flex;justify-content:flex-end;margin-top:16px;">`)
	b.WriteString(`<table style="width:320px;">`)
	fmt.Fprintf(&b, `<tr><td style="padding:6px 8px;">Sub Total</td><td style="padding:6px 8px;text-align:right;">%s</td></tr>`, formatMoney(inv.SubTotal))
	fmt.Fprintf(&b, `<tr><td style="padding:6px 8px;">Tax</td><td style="padding:6px 8px;text-align:right;">%s</td></tr>`, formatMoney(inv.Tax))
	fmt.Fprintf(&b, `<tr><td style="padding:6px 8px;">Discount</td><td style="padding:6px 8px;text-align:right;">%s</td></tr>`, formatMoney(inv.Discount))
	fmt.Fprintf(&b, `<tr style="font-weight:bold;"><td style="padding:8px 8px;border-top:1px solid #eee;">Total</td><td style="padding:8px 8px;border-top:1px solid #eee;text-align:right;">%s</td></tr>`, formatMoney(inv.Total))
	b.WriteString(`</table></div>`)

	fmt.Fprintf(&b, `<footer style="margin-top:20px;"><p style="color:#666;">%s</p></footer>`, esc(inv.Notes))
	b.WriteString(`</div>`)
	return b.String()
}

// formatMoney renders an amount with two decimal places and thousands
// separators, e.g. 1234.5 -> "1,234.50".
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(frac)
	return b.String()
}
