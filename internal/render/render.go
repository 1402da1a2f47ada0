// Package render turns a document model into a standalone printable HTML
// page. Rendering is pure: the same docType, data, and theme always produce
// the same markup, and missing fields render as empty strings, never as a
// literal "undefined" or "null".
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/docforge/docforge/internal/types"
)

// HTML renders the document described by docType and data into a complete
// HTML page using the named theme. Unknown docTypes fall back to the modern
// resume template; unknown themes fall back to blue. The only error case is
// data that cannot be decoded into the selected document shape.
func HTML(docType string, data json.RawMessage, themeName string) (string, error) {
	t := ThemeByName(themeName)

	var content string
	switch docType {
	case types.TemplateClassic:
		r, err := decodeResume(data)
		if err != nil {
			return "", err
		}
		content = buildClassic(r, t)
	case types.TemplateMinimal:
		r, err := decodeResume(data)
		if err != nil {
			return "", err
		}
		content = buildMinimal(r, t)
	case types.DocTypeInvoice:
		var inv types.Invoice
		if err := decodeInto(data, &inv); err != nil {
			return "", err
		}
		content = buildInvoice(inv, t)
	case types.DocTypeCoverLetter:
		var letter types.CoverLetter
		if err := decodeInto(data, &letter); err != nil {
			return "", err
		}
		content = buildCoverLetter(letter, t)
	default:
		// modern, resume, empty, and anything unrecognized
		r, err := decodeResume(data)
		if err != nil {
			return "", err
		}
		content = buildModern(r, t)
	}

	return page(content, t), nil
}

func decodeResume(data json.RawMessage) (types.Resume, error) {
	var r types.Resume
	err := decodeInto(data, &r)
	return r, err
}

// ErrMalformedData marks document payloads that do not match the expected
// shape. Callers can errors.Is against it to classify render failures as
// client errors.
var ErrMalformedData = errors.New("malformed document data")

func decodeInto(data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return nil
}

// page wraps rendered content in the document shell. The style rules are
// fixed apart from the theme color substitutions.
func page(content string, t Theme) string {
	var b strings.Builder
	b.WriteString("<html><head>")
	b.WriteString(`<meta charset="utf-8" />`)
	b.WriteString(`<meta name="viewport" content="width=device-width,initial-scale=1" />`)
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }\n")
	b.WriteString("h1 { font-size: 26px; margin: 0 0 6px; }\n")
	b.WriteString("h2 { font-size: 18px; margin: 10px 0; }\n")
	b.WriteString("h3 { font-size: 14px; margin: 8px 0; }\n")
	b.WriteString("p, li { font-size: 13px; margin: 4px 0; color: #222; }\n")
	b.WriteString("ul { margin: 6px 0 12px 20px; padding: 0; }\n")
	b.WriteString(".section { margin-bottom: 14px; }\n")
	fmt.Fprintf(&b, ".skills .skill { display:inline-block;margin:4px;padding:4px 8px;border-radius:12px;background:%s;color:%s;font-size:12px; }\n", t.Light, t.Primary)
	b.WriteString(".classic { display:flex; }\n")
	b.WriteString(".classic .sidebar { width:30%; padding:20px; box-sizing:border-box; }\n")
	b.WriteString(".classic .content { width:70%; padding:20px; box-sizing:border-box; }\n")
	b.WriteString(".modern .header { display:flex; justify-content:space-between; align-items:center; padding:20px 20px; color:white; }\n")
	b.WriteString(".modern .content { padding:20px; }\n")
	b.WriteString(".minimal { padding:20px; }\n")
	b.WriteString(".invoice { padding: 10px 0; }\n")
	b.WriteString(".cover-letter { padding:40px; }\n")
	b.WriteString("</style></head><body>")
	b.WriteString(content)
	b.WriteString("</body></html>")
	return b.String()
}

// esc HTML-escapes a scalar field for safe embedding. The zero string stays
// the zero string, which is what gives every template its missing-field
// guarantee.
func esc(s string) string {
	return html.EscapeString(s)
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
