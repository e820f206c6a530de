// ABOUTME: Deterministic, filesystem-safe names for downloaded document texts
// ABOUTME: Names combine the document date and number, falling back to the id

package texts

import (
	"strings"

	"dip-digest/core/domain"
	datetime "dip-digest/pkg/utils/time"
)

const (
	// UnknownDate replaces a missing or invalid document date
	UnknownDate = "unknown-date"

	// Placeholder replaces a name that sanitizes to nothing
	Placeholder = "Unbekannt"
)

var reservedReplacer = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeName replaces filesystem-reserved characters with underscores and
// trims surrounding whitespace. Applying it twice yields the same result.
func SanitizeName(name string) string {
	name = strings.TrimSpace(reservedReplacer.Replace(name))
	if name == "" {
		return Placeholder
	}
	return name
}

// DateLabel returns the validated ISO date prefix of the record date, then of
// the detail's fundstelle date, else UnknownDate
func DateLabel(record domain.NormalizedRecord, detail *domain.TextDetail) string {
	raw := record.Datum
	if raw == "" {
		raw = detail.FundstelleDatum()
	}
	if date, ok := datetime.ISODatePrefix(raw); ok {
		return date
	}
	return UnknownDate
}

// NumberLabel returns the document number with slashes as underscores, or id_<id>
func NumberLabel(record domain.NormalizedRecord) string {
	number := strings.TrimSpace(record.Dokumentnummer)
	if number == "" {
		number = "id_" + record.ID.String()
	}
	return strings.ReplaceAll(number, "/", "_")
}

// FileName returns "<date> <number>.txt" for the record
func FileName(record domain.NormalizedRecord, detail *domain.TextDetail) string {
	return SanitizeName(DateLabel(record, detail)+" "+NumberLabel(record)) + ".txt"
}

// DirName returns the per-type subdirectory name for the record
func DirName(record domain.NormalizedRecord) string {
	return SanitizeName(record.Drucksachetyp)
}
