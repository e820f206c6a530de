package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dip-digest/core/domain"
)

func answer(id string, relations ...string) domain.RawRecord {
	rec := domain.RawRecord{
		ID:            domain.DocumentID(id),
		Drucksachetyp: "Antwort",
	}
	for _, r := range relations {
		rec.Vorgangsbezug = append(rec.Vorgangsbezug, domain.Relation{Vorgangstyp: r})
	}
	return rec
}

func TestIsInquiryType(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Kleine Anfrage", true},
		{"KLEINE ANFRAGE", true},
		{"Große Anfrage", true},
		{"Grosse Anfrage", true},
		{"GROSSE  ANFRAGE", true},
		{"Antwort auf Kleine Anfrage", true},
		{"Gesetzgebung", false},
		{"Antrag", false},
		{"Schriftliche Frage", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInquiryType(tt.input))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "grosse anfrage", Fold("  Große\tAnfrage "))
	assert.Equal(t, "anfrage zur uberprufung", Fold("Anfrage zur Überprüfung"))
}

func TestApply_SpecExample(t *testing.T) {
	raw := []domain.RawRecord{{
		ID:             "100",
		Drucksachetyp:  "Antwort",
		Titel:          "Zur Lage",
		Dokumentnummer: "20/100",
		Datum:          "2024-01-03",
		Urheber:        []domain.Attribution{{Titel: "Fraktion X"}},
		Vorgangsbezug:  []domain.Relation{{Vorgangstyp: "Kleine Anfrage"}},
		Fundstelle:     &domain.Fundstelle{PDFURL: "https://dip.example/20100.pdf"},
	}}

	out := NewFilter("").Apply(raw)

	require.Len(t, out, 1)
	assert.Equal(t, domain.NormalizedRecord{
		ID:             "100",
		Titel:          "Zur Lage",
		Dokumentnummer: "20/100",
		Drucksachetyp:  "Antwort",
		Datum:          "2024-01-03",
		PDFURL:         "https://dip.example/20100.pdf",
		Urheber:        "Fraktion X",
	}, out[0])
}

func TestApply_ExcludesWrongType(t *testing.T) {
	rec := answer("1", "Kleine Anfrage")
	rec.Drucksachetyp = "Gesetzentwurf"

	assert.Empty(t, NewFilter("Antwort").Apply([]domain.RawRecord{rec}))
}

func TestApply_FallsBackToTyp(t *testing.T) {
	rec := answer("1", "Große Anfrage")
	rec.Drucksachetyp = ""
	rec.Typ = "Antwort"

	out := NewFilter("Antwort").Apply([]domain.RawRecord{rec})

	require.Len(t, out, 1)
	assert.Equal(t, "Antwort", out[0].Drucksachetyp)
}

func TestApply_ExcludesMissingOrUnrelatedRelations(t *testing.T) {
	raw := []domain.RawRecord{
		answer("no-relations"),
		answer("unrelated", "Gesetzgebung", "Antrag"),
		answer("empty-type", ""),
	}

	assert.Empty(t, NewFilter("").Apply(raw))
}

func TestApply_AnyRelationMayMatch(t *testing.T) {
	out := NewFilter("").Apply([]domain.RawRecord{answer("1", "Antrag", "Grosse Anfrage")})

	assert.Len(t, out, 1)
}

func TestApply_PreservesOrder(t *testing.T) {
	raw := []domain.RawRecord{
		answer("c", "Kleine Anfrage"),
		answer("skip"),
		answer("a", "Kleine Anfrage"),
		answer("b", "Große Anfrage"),
	}

	out := NewFilter("").Apply(raw)

	require.Len(t, out, 3)
	assert.Equal(t, domain.DocumentID("c"), out[0].ID)
	assert.Equal(t, domain.DocumentID("a"), out[1].ID)
	assert.Equal(t, domain.DocumentID("b"), out[2].ID)
}

func TestApply_EmptyInput(t *testing.T) {
	out := NewFilter("").Apply(nil)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestNormalize_AttributionUsesFirstEntryOnly(t *testing.T) {
	rec := answer("1")
	rec.Urheber = []domain.Attribution{
		{Bezeichnung: "BRg"},
		{Titel: "Fraktion Y"},
	}

	assert.Equal(t, "BRg", Normalize(rec).Urheber)
}

func TestNormalize_AbsentAttribution(t *testing.T) {
	rec := answer("1")

	assert.Equal(t, "", Normalize(rec).Urheber)

	rec.Urheber = []domain.Attribution{{}}
	assert.Equal(t, "", Normalize(rec).Urheber)
}

func TestNormalize_DateFallsBackToFundstelle(t *testing.T) {
	rec := answer("1")
	rec.Fundstelle = &domain.Fundstelle{Datum: "2024-01-05"}

	assert.Equal(t, "2024-01-05", Normalize(rec).Datum)

	rec.Datum = "2024-01-04"
	assert.Equal(t, "2024-01-04", Normalize(rec).Datum)
}

func TestNormalize_NoFundstelle(t *testing.T) {
	n := Normalize(answer("1"))

	assert.Equal(t, "", n.Datum)
	assert.Equal(t, "", n.PDFURL)
	assert.Nil(t, n.LocalTextPath)
}
