// ABOUTME: Digest renderer turns normalized records into a grouped markdown document
// ABOUTME: Rendering is pure and deterministic; HTML output is converted with goldmark

package digest

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"dip-digest/core/domain"
)

const (
	// Title is the first line of every digest
	Title = "# Antworten der Bundesregierung auf Kleine/Grosse Anfragen"

	// UnknownGroup replaces an absent or blank attribution
	UnknownGroup = "Unbekannt"

	// NoTitle replaces an absent title
	NoTitle = "Ohne Titel"

	// EmptyState is rendered instead of groups when there are no records
	EmptyState = "_Keine Eintraege gefunden._"

	separator = " · "
)

// Options controls the rendering variant
type Options struct {
	// Enriched appends the local text link or the text failure to each bullet
	Enriched bool
}

// GroupKey returns the trimmed attribution or UnknownGroup
func GroupKey(record domain.NormalizedRecord) string {
	key := collapse(record.Urheber)
	if key == "" {
		return UnknownGroup
	}
	return key
}

// Sort orders records by group key, then date, then document number.
// All three compare as plain strings, so "20/10" sorts before "20/2".
// The input slice is not modified.
func Sort(records []domain.NormalizedRecord) []domain.NormalizedRecord {
	sorted := make([]domain.NormalizedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func less(a, b domain.NormalizedRecord) bool {
	if ga, gb := GroupKey(a), GroupKey(b); ga != gb {
		return ga < gb
	}
	if a.Datum != b.Datum {
		return a.Datum < b.Datum
	}
	if a.Dokumentnummer != b.Dokumentnummer {
		return a.Dokumentnummer < b.Dokumentnummer
	}
	// Remaining fields only break ties between otherwise equal keys
	return bullet(a, Options{Enriched: true}) < bullet(b, Options{Enriched: true})
}

// Header returns the title and date range lines
func Header(window domain.DateWindow) string {
	return fmt.Sprintf("%s\n## Zeitraum: %s - %s\n\n", Title, window.StartString(), window.EndString())
}

// Render builds the markdown digest for the window
func Render(window domain.DateWindow, records []domain.NormalizedRecord, opts Options) string {
	var b strings.Builder
	b.WriteString(Header(window))

	if len(records) == 0 {
		b.WriteString(EmptyState)
		b.WriteString("\n")
		return b.String()
	}

	current := ""
	for i, record := range Sort(records) {
		group := GroupKey(record)
		if i == 0 || group != current {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("## ")
			b.WriteString(inline(group))
			b.WriteString("\n\n")
			current = group
		}
		b.WriteString(bullet(record, opts))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n_Anzahl Eintraege: %d._\n", len(records))
	return b.String()
}

func bullet(record domain.NormalizedRecord, opts Options) string {
	title := inline(record.Titel)
	if title == "" {
		title = NoTitle
	}

	parts := []string{"- **" + title + "**"}
	if number := inline(record.Dokumentnummer); number != "" {
		parts = append(parts, "BT-Drucksache "+number)
	}
	if typ := inline(record.Drucksachetyp); typ != "" {
		parts = append(parts, typ)
	}
	if datum := inline(record.Datum); datum != "" {
		parts = append(parts, datum)
	}
	if record.PDFURL != "" {
		parts = append(parts, "[PDF]("+linkTarget(record.PDFURL)+")")
	}

	if opts.Enriched {
		switch {
		case record.HasText():
			parts = append(parts, "[Text]("+linkPath(*record.LocalTextPath)+")")
		case record.TextError != "":
			parts = append(parts, "_Text nicht verfügbar: "+inline(record.TextError)+"_")
		}
	}

	return strings.Join(parts, separator)
}

// collapse joins all whitespace runs, line breaks included, into single spaces
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var emphasisEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

// inline makes API text safe inside a single markdown bullet line
func inline(s string) string {
	return emphasisEscaper.Replace(collapse(s))
}

var linkEscaper = strings.NewReplacer(
	" ", "%20",
	"\t", "%09",
	"\n", "%0A",
	"\r", "%0D",
	"(", "%28",
	")", "%29",
)

// linkTarget escapes characters that would end a markdown link destination
func linkTarget(target string) string {
	return linkEscaper.Replace(strings.TrimSpace(target))
}

// linkPath makes a local file path usable as a markdown link target
func linkPath(path string) string {
	return linkTarget(strings.ReplaceAll(path, `\`, "/"))
}

// RenderHTML converts a rendered markdown digest to an HTML fragment
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert digest to HTML: %w", err)
	}
	return buf.String(), nil
}
