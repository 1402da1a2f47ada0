package render

import (
	"fmt"
	"strings"

	"github.com/docforge/docforge/internal/types"
)

// buildClassic lays the resume out with a tinted sidebar. Skills sections
// are relocated into the sidebar as pill badges and excluded from the main
// content pass so they never appear twice.
func buildClassic(r types.Resume, t Theme) string {
	var b strings.Builder
	b.WriteString(`<div class="page classic">`)

	fmt.Fprintf(&b, `<aside class="sidebar" style="background:%s; padding:20px; box-sizing:border-box;">`, t.Light)
	fmt.Fprintf(&b, `<h1 style="margin:0 0 6px 0;">%s</h1>`, esc(r.Name))
	fmt.Fprintf(&b, `<p class="subtitle" style="margin:0 0 10px 0;">%s</p>`, esc(r.Title))

	fmt.Fprintf(&b, `<h2 style="color:%s; margin-top:8px; margin-bottom:6px;">Contact</h2>`, t.Primary)
	fmt.Fprintf(&b, `<p style="margin:2px 0;">%s</p>`, esc(r.Contact.Email))
	fmt.Fprintf(&b, `<p style="margin:2px 0;">%s</p>`, esc(r.Contact.Phone))
	fmt.Fprintf(&b, `<p style="margin:2px 0;">%s</p>`, esc(r.Contact.Location))
	fmt.Fprintf(&b, `<p style="margin:2px 0;">%s</p>`, esc(r.Contact.LinkedIn))
	fmt.Fprintf(&b, `<p style="margin:2px 0 12px 0;">%s</p>`, esc(r.Contact.Portfolio))

	for _, s := range r.Sections {
		if s.Type != types.SectionSkills {
			continue
		}
		b.WriteString(`<div style="margin-top:12px;">`)
		fmt.Fprintf(&b, `<h2 style="color:%s; margin:0 0 8px 0;">%s</h2>`, t.Primary, esc(s.Title))
		b.WriteString(`<div class="skills" style="margin-top:6px; line-height:1;">`)
		for _, item := range s.Items {
			fmt.Fprintf(&b,
				`<span class="skill" style="display:inline-block;margin:4px 6px 4px 0;padding:6px 10px;border-radius:12px;background:%s;color:%s;font-size:12px;box-shadow:0 0 0 1px %s22 inset;">%s</span>`,
				t.Light, t.Primary, t.Primary, esc(itemLabel(item)))
		}
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</aside>`)

	b.WriteString(`<main class="content" style="padding:20px; box-sizing:border-box;">`)
	for _, s := range r.Sections {
		if s.Type == types.SectionSkills {
			continue
		}
		b.WriteString(renderSection(s, t))
	}
	b.WriteString(`</main></div>`)
	return b.String()
}

// buildModern uses a gradient header with the contact block on the right.
func buildModern(r types.Resume, t Theme) string {
	var b strings.Builder
	b.WriteString(`<div class="page modern">`)
	fmt.Fprintf(&b, `<header class="header" style="background:linear-gradient(135deg, %s, %s);color:white;">`, t.Secondary, t.Primary)
	b.WriteString(`<div>`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(r.Name))
	fmt.Fprintf(&b, `<p class="subtitle" style="color:white;">%s</p>`, esc(r.Title))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="contact" style="color:white;">`)
	fmt.Fprintf(&b, `<p style="color:white;">📧 %s</p>`, esc(r.Contact.Email))
	fmt.Fprintf(&b, `<p style="color:white;">🕿 %s</p>`, esc(r.Contact.Phone))
	fmt.Fprintf(&b, `<p style="color:white;">⚲ %s</p>`, esc(r.Contact.Location))
	fmt.Fprintf(&b, `<p style="color:white;">%s</p>`, esc(r.Contact.LinkedIn))
	fmt.Fprintf(&b, `<p style="color:white;">%s</p>`, esc(r.Contact.Portfolio))
	b.WriteString(`</div></header>`)

	b.WriteString(`<main class="content">`)
	for _, s := range r.Sections {
		b.WriteString(renderSection(s, t))
	}
	b.WriteString(`</main></div>`)
	return b.String()
}

// buildMinimal is a flat single-column layout with a pipe-separated contact
// line. The line always carries all five slots, present or not.
func buildMinimal(r types.Resume, t Theme) string {
	var b strings.Builder
	b.WriteString(`<div class="page minimal">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(r.Name))
	fmt.Fprintf(&b, `<p class="subtitle">%s</p>`, esc(r.Title))
	fmt.Fprintf(&b, `<p class="meta">%s | %s | %s | %s | %s</p>`,
		esc(r.Contact.Email), esc(r.Contact.Phone), esc(r.Contact.Location),
		esc(r.Contact.LinkedIn), esc(r.Contact.Portfolio))
	for _, s := range r.Sections {
		b.WriteString(renderSection(s, t))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderSection dispatches on the section type. Summary gets a paragraph,
// skills get pill badges, experience gets job blocks, the generic list types
// share renderItems, and anything else renders nothing.
func renderSection(s types.Section, t Theme) string {
	switch s.Type {
	case types.SectionSummary:
		return fmt.Sprintf(`<div class="section"><h2 style="color:%s">%s</h2><p>%s</p></div>`,
			t.Primary, esc(s.Title), esc(s.Content))

	case types.SectionSkills:
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="section"><h2 style="color:%s">%s</h2><div class="skills">`, t.Primary, esc(s.Title))
		for _, item := range s.Items {
			fmt.Fprintf(&b, `<span class="skill">%s</span>`, esc(itemLabel(item)))
		}
		b.WriteString(`</div></div>`)
		return b.String()

	case types.SectionExperience:
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="section"><h2 style="color:%s">%s</h2>`, t.Primary, esc(s.Title))
		for _, job := range s.Items {
			b.WriteString(`<div class="job">`)
			heading := job.Role
			if heading == "" {
				heading = job.Text
			}
			b.WriteString(`<h3>` + esc(heading))
			if job.Company != "" {
				b.WriteString(" — " + esc(job.Company))
			}
			b.WriteString(`</h3>`)
			fmt.Fprintf(&b, `<p class="meta">%s</p>`, esc(joinPresent(" • ", job.Period, job.Location)))
			b.WriteString(renderAchievements(job.Achievements))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		return b.String()

	case types.SectionEducation, types.SectionCertifications, types.SectionProjects,
		types.SectionLanguages, types.SectionHobbies:
		return fmt.Sprintf(`<div class="section"><h2 style="color:%s">%s</h2><ul>%s</ul></div>`,
			t.Primary, esc(s.Title), renderItems(s.Items))
	}
	return ""
}

// renderItems renders the generic list sections, inspecting each item's
// shape in order: plain string, degree entry, role entry, text, raw value.
func renderItems(items []types.SectionItem) string {
	var b strings.Builder
	for _, it := range items {
		switch it.Kind() {
		case types.ItemString, types.ItemText:
			fmt.Fprintf(&b, `<li>%s</li>`, esc(itemLabel(it)))
		case types.ItemDegree:
			b.WriteString(`<li>` + esc(it.Degree))
			if it.Institution != "" {
				b.WriteString(", " + esc(it.Institution))
			}
			if it.Year != "" {
				b.WriteString(" (" + esc(it.Year) + ")")
			}
			b.WriteString(`</li>`)
		case types.ItemRole:
			b.WriteString(`<li><strong>` + esc(it.Role) + `</strong>`)
			if it.Company != "" {
				b.WriteString(" at " + esc(it.Company))
			}
			if meta := joinPresent(" • ", it.Period, it.Location); meta != "" {
				b.WriteString(" (" + esc(meta) + ")")
			}
			b.WriteString(renderAchievements(it.Achievements))
			b.WriteString(`</li>`)
		case types.ItemRaw:
			fmt.Fprintf(&b, `<li>%s</li>`, esc(it.Raw()))
		}
	}
	return b.String()
}

func renderAchievements(achievements []string) string {
	if len(achievements) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul>`)
	for _, a := range achievements {
		fmt.Fprintf(&b, `<li>%s</li>`, esc(a))
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// itemLabel is the display string for items used where only text fits, such
// as skill pills: the string or text payload, else the raw JSON token.
func itemLabel(it types.SectionItem) string {
	if it.Text != "" {
		return it.Text
	}
	return it.Raw()
}
