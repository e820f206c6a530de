// ABOUTME: Normalized record model produced by the filter and enriched by the text fetcher
// ABOUTME: Also holds the per-item outcome type and the query date window

package domain

import (
	"errors"
	"time"
)

// DateLayout is the ISO calendar date layout used by the DIP API
const DateLayout = "2006-01-02"

// NormalizedRecord is the projected shape of an answer document.
// Urheber is already collapsed to a single display string.
type NormalizedRecord struct {
	ID             DocumentID `json:"id"`
	Titel          string     `json:"titel,omitempty"`
	Dokumentnummer string     `json:"dokumentnummer,omitempty"`
	Drucksachetyp  string     `json:"drucksachetyp,omitempty"`
	Datum          string     `json:"datum,omitempty"`
	PDFURL         string     `json:"pdf_url,omitempty"`
	Urheber        string     `json:"urheber,omitempty"`

	// Set by the text fetcher; nil means no text file was written
	LocalTextPath *string `json:"local_text_path"`
	TextError     string  `json:"text_error,omitempty"`
}

// HasText reports whether a text file was written for the record
func (r *NormalizedRecord) HasText() bool {
	return r.LocalTextPath != nil && *r.LocalTextPath != ""
}

// MarkFailed clears the text path and records the failure message
func (r *NormalizedRecord) MarkFailed(err error) {
	r.LocalTextPath = nil
	if err == nil {
		err = errors.New("unknown error")
	}
	r.TextError = err.Error()
}

// MarkSaved records the written text path
func (r *NormalizedRecord) MarkSaved(path string) {
	p := path
	r.LocalTextPath = &p
	r.TextError = ""
}

// TextOutcome is the per-record result of the text fetch step.
// Err is nil on success; the record is carried either way.
type TextOutcome struct {
	Record NormalizedRecord
	Err    error
}

// Succeeded reports whether a text file was written
func (o TextOutcome) Succeeded() bool {
	return o.Err == nil && o.Record.HasText()
}

// DateWindow is the inclusive query window
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow returns the window of the given number of days ending on end
func NewDateWindow(end time.Time, days int) DateWindow {
	if days < 1 {
		days = 1
	}
	return DateWindow{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
	}
}

// StartString formats the start date as YYYY-MM-DD
func (w DateWindow) StartString() string {
	return w.Start.Format(DateLayout)
}

// EndString formats the end date as YYYY-MM-DD
func (w DateWindow) EndString() string {
	return w.End.Format(DateLayout)
}

// Validate checks that the window is not inverted
func (w DateWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return errors.New("date window requires start and end")
	}
	if w.End.Before(w.Start) {
		return errors.New("date window end is before start")
	}
	return nil
}
