package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dip-digest/core/domain"
)

func testWindow() domain.DateWindow {
	return domain.DateWindow{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestRender_SingleRecord(t *testing.T) {
	records := []domain.NormalizedRecord{{
		ID:             "1",
		Titel:          "Lage der Bahn",
		Dokumentnummer: "20/100",
		Drucksachetyp:  "Antwort",
		Datum:          "2024-01-03",
		PDFURL:         "https://dip.example/20100.pdf",
		Urheber:        "Fraktion X",
	}}

	out := Render(testWindow(), records, Options{})

	expected := "# Antworten der Bundesregierung auf Kleine/Grosse Anfragen\n" +
		"## Zeitraum: 2024-01-01 - 2024-01-07\n\n" +
		"## Fraktion X\n\n" +
		"- **Lage der Bahn** · BT-Drucksache 20/100 · Antwort · 2024-01-03 · [PDF](https://dip.example/20100.pdf)\n" +
		"\n_Anzahl Eintraege: 1._\n"
	assert.Equal(t, expected, out)
}

func TestRender_Empty(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.NormalizedRecord
	}{
		{"nil", nil},
		{"empty", []domain.NormalizedRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(testWindow(), tt.records, Options{Enriched: true})

			assert.Equal(t, Header(testWindow())+EmptyState+"\n", out)
		})
	}
}

func TestRender_MissingFields(t *testing.T) {
	records := []domain.NormalizedRecord{{ID: "7", Urheber: "   "}}

	out := Render(testWindow(), records, Options{})

	assert.Contains(t, out, "## Unbekannt\n")
	assert.Contains(t, out, "- **Ohne Titel**\n")
	assert.NotContains(t, out, "BT-Drucksache")
	assert.NotContains(t, out, "[PDF]")
}

func TestRender_GroupsSortedAndCounted(t *testing.T) {
	records := []domain.NormalizedRecord{
		{ID: "1", Titel: "B", Urheber: "Fraktion Y", Datum: "2024-01-02"},
		{ID: "2", Titel: "A", Urheber: "Fraktion X", Datum: "2024-01-05"},
		{ID: "3", Titel: "C", Urheber: "", Datum: "2024-01-01"},
		{ID: "4", Titel: "D", Urheber: "Fraktion X", Datum: "2024-01-04"},
	}

	out := Render(testWindow(), records, Options{})

	x := strings.Index(out, "## Fraktion X")
	y := strings.Index(out, "## Fraktion Y")
	u := strings.Index(out, "## Unbekannt")
	require.True(t, x > 0 && y > 0 && u > 0)
	assert.Less(t, x, y)
	assert.Less(t, y, u)
	assert.Less(t, strings.Index(out, "**D**"), strings.Index(out, "**A**"))
	assert.Equal(t, 1, strings.Count(out, "## Fraktion X"))
	assert.True(t, strings.HasSuffix(out, "_Anzahl Eintraege: 4._\n"))
}

func TestRender_LexicographicNumberOrder(t *testing.T) {
	records := []domain.NormalizedRecord{
		{ID: "1", Titel: "zwei", Urheber: "G", Datum: "2024-01-03", Dokumentnummer: "20/2"},
		{ID: "2", Titel: "zehn", Urheber: "G", Datum: "2024-01-03", Dokumentnummer: "20/10"},
	}

	out := Render(testWindow(), records, Options{})

	assert.Less(t, strings.Index(out, "20/10"), strings.Index(out, "20/2 "))
}

func TestRender_EmptyDateSortsFirst(t *testing.T) {
	records := []domain.NormalizedRecord{
		{ID: "1", Titel: "dated", Urheber: "G", Datum: "2024-01-03"},
		{ID: "2", Titel: "undated", Urheber: "G"},
	}

	sorted := Sort(records)

	assert.Equal(t, domain.DocumentID("2"), sorted[0].ID)
	assert.Equal(t, domain.DocumentID("1"), records[0].ID, "input untouched")
}

func TestRender_DeterministicUnderPermutation(t *testing.T) {
	a := domain.NormalizedRecord{ID: "1", Titel: "A", Urheber: "Fraktion X", Datum: "2024-01-02", Dokumentnummer: "20/1"}
	b := domain.NormalizedRecord{ID: "2", Titel: "B", Urheber: "Fraktion X", Datum: "2024-01-02", Dokumentnummer: "20/1"}
	c := domain.NormalizedRecord{ID: "3", Titel: "C", Urheber: "Fraktion Y", Datum: "2024-01-01"}
	d := domain.NormalizedRecord{ID: "4", Titel: "D", Datum: "2024-01-06"}

	permutations := [][]domain.NormalizedRecord{
		{a, b, c, d},
		{d, c, b, a},
		{b, d, a, c},
		{c, a, d, b},
	}

	first := Render(testWindow(), permutations[0], Options{Enriched: true})
	for _, p := range permutations[1:] {
		assert.Equal(t, first, Render(testWindow(), p, Options{Enriched: true}))
	}
}

func TestRender_EnrichedVariant(t *testing.T) {
	records := []domain.NormalizedRecord{
		{ID: "1", Titel: "saved", Urheber: "G", Datum: "2024-01-01", LocalTextPath: strPtr("drucksache_texts/Antwort/2024-01-01 20_1.txt")},
		{ID: "2", Titel: "failed", Urheber: "G", Datum: "2024-01-02", TextError: "no text from drucksache-text API"},
		{ID: "3", Titel: "untouched", Urheber: "G", Datum: "2024-01-03"},
	}

	plain := Render(testWindow(), records, Options{})
	enriched := Render(testWindow(), records, Options{Enriched: true})

	assert.NotContains(t, plain, "[Text]")
	assert.NotContains(t, plain, "nicht verfügbar")
	assert.Contains(t, enriched, "- **saved** · 2024-01-01 · [Text](drucksache_texts/Antwort/2024-01-01%2020_1.txt)\n")
	assert.Contains(t, enriched, "- **failed** · 2024-01-02 · _Text nicht verfügbar: no text from drucksache-text API_\n")
	assert.Contains(t, enriched, "- **untouched** · 2024-01-03\n")
}

func TestRenderHTML(t *testing.T) {
	records := []domain.NormalizedRecord{{
		ID:             "1",
		Titel:          "Lage der Bahn",
		Dokumentnummer: "20/100",
		PDFURL:         "https://dip.example/20100.pdf",
		Urheber:        "Fraktion X",
	}}

	html, err := RenderHTML(Render(testWindow(), records, Options{}))

	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Antworten der Bundesregierung auf Kleine/Grosse Anfragen</h1>")
	assert.Contains(t, html, "<h2>Fraktion X</h2>")
	assert.Contains(t, html, "<strong>Lage der Bahn</strong>")
	assert.Contains(t, html, `<a href="https://dip.example/20100.pdf">PDF</a>`)
}

func TestGroupKey(t *testing.T) {
	assert.Equal(t, "Fraktion X", GroupKey(domain.NormalizedRecord{Urheber: "  Fraktion X "}))
	assert.Equal(t, UnknownGroup, GroupKey(domain.NormalizedRecord{}))
}

func TestRender_KeepsBulletsOnOneLine(t *testing.T) {
	records := []domain.NormalizedRecord{{
		ID:             "1",
		Titel:          "Zeile eins\n  Zeile **zwei**_x_",
		Dokumentnummer: "20/ 100",
		Datum:          "2024-01-03",
		Urheber:        "Fraktion\nX",
		PDFURL:         "https://dip.example/a (1).pdf",
		TextError:      "HTTP 500\nfor *detail*",
	}}

	out := Render(testWindow(), records, Options{Enriched: true})

	assert.Contains(t, out, "## Fraktion X\n")
	assert.Contains(t, out, `- **Zeile eins Zeile \*\*zwei\*\*\_x\_** · BT-Drucksache 20/ 100 · 2024-01-03 · [PDF](https://dip.example/a%20%281%29.pdf) · _Text nicht verfügbar: HTTP 500 for \*detail\*_`+"\n")

	bullets := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "- ") {
			bullets++
		}
	}
	assert.Equal(t, 1, bullets)

	html, err := RenderHTML(out)
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>Zeile eins Zeile **zwei**_x_</strong>")
}

func TestRender_BlankTitleAfterCollapse(t *testing.T) {
	out := Render(testWindow(), []domain.NormalizedRecord{{ID: "1", Titel: " \n\t "}}, Options{})

	assert.Contains(t, out, "- **Ohne Titel**\n")
}
