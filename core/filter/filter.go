// ABOUTME: Filter selects government answers to small and large inquiries
// ABOUTME: Projects matching raw records onto the normalized record shape

package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dip-digest/core/domain"
)

// DefaultDocumentType is the answer discriminator used by the DIP API
const DefaultDocumentType = "Antwort"

// inquiryPatterns are matched against folded vorgangstyp values
var inquiryPatterns = []string{
	"kleine anfrage",
	"grosse anfrage",
}

// Filter keeps answers whose relations point at an inquiry
type Filter struct {
	documentType string
}

// NewFilter creates a filter for the given type discriminator.
// An empty type selects DefaultDocumentType.
func NewFilter(documentType string) *Filter {
	if documentType == "" {
		documentType = DefaultDocumentType
	}
	return &Filter{documentType: documentType}
}

// Apply returns the normalized projection of every matching record in input order
func (f *Filter) Apply(records []domain.RawRecord) []domain.NormalizedRecord {
	out := make([]domain.NormalizedRecord, 0)
	for _, record := range records {
		if !f.Matches(record) {
			continue
		}
		out = append(out, Normalize(record))
	}
	return out
}

// Matches reports whether the record is an answer related to an inquiry
func (f *Filter) Matches(record domain.RawRecord) bool {
	if record.DocumentType() != f.documentType {
		return false
	}
	for _, relation := range record.Vorgangsbezug {
		if IsInquiryType(relation.Vorgangstyp) {
			return true
		}
	}
	return false
}

// Normalize projects a raw record; it never fails on absent fields
func Normalize(record domain.RawRecord) domain.NormalizedRecord {
	datum := record.Datum
	if datum == "" {
		datum = record.FundstelleDatum()
	}

	return domain.NormalizedRecord{
		ID:             record.ID,
		Titel:          record.Titel,
		Dokumentnummer: record.Dokumentnummer,
		Drucksachetyp:  record.DocumentType(),
		Datum:          datum,
		PDFURL:         record.PDFURL(),
		Urheber:        record.FirstAttribution(),
	}
}

// IsInquiryType reports whether a vorgangstyp names a small or large inquiry.
// Matching is case-insensitive and treats "Große" and "Grosse" alike.
func IsInquiryType(vorgangstyp string) bool {
	folded := Fold(vorgangstyp)
	if folded == "" {
		return false
	}
	for _, pattern := range inquiryPatterns {
		if strings.Contains(folded, pattern) {
			return true
		}
	}
	return false
}

// Fold lowercases s, spells ß as ss, strips diacritics and collapses whitespace
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ß", "ss")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.Join(strings.Fields(stripped), " ")
}
