// ABOUTME: Document domain models for DIP list and detail endpoint payloads
// ABOUTME: Every optional field is modelled explicitly and read through guarded accessors

package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DocumentID is the stable DIP document identifier.
// The API sends it as a string, older payloads as a number; both decode.
type DocumentID string

// UnmarshalJSON accepts a JSON string, a JSON number or null
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocumentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = DocumentID(n.String())
	return nil
}

// String returns the identifier as plain text
func (id DocumentID) String() string {
	return string(id)
}

// Attribution is one entry of a document's urheber list
type Attribution struct {
	Titel       string `json:"titel,omitempty"`
	Bezeichnung string `json:"bezeichnung,omitempty"`
}

// DisplayName returns titel, falling back to bezeichnung
func (a Attribution) DisplayName() string {
	if a.Titel != "" {
		return a.Titel
	}
	return a.Bezeichnung
}

// Relation is one entry of a document's vorgangsbezug list
type Relation struct {
	Vorgangstyp string `json:"vorgangstyp,omitempty"`
}

// Fundstelle is the nested publication reference of a document
type Fundstelle struct {
	Datum  string `json:"datum,omitempty"`
	PDFURL string `json:"pdf_url,omitempty"`
}

// RawRecord is a document as returned by the drucksache list endpoint
type RawRecord struct {
	ID             DocumentID    `json:"id"`
	Drucksachetyp  string        `json:"drucksachetyp,omitempty"`
	Typ            string        `json:"typ,omitempty"`
	Titel          string        `json:"titel,omitempty"`
	Dokumentnummer string        `json:"dokumentnummer,omitempty"`
	Datum          string        `json:"datum,omitempty"`
	Urheber        []Attribution `json:"urheber,omitempty"`
	Vorgangsbezug  []Relation    `json:"vorgangsbezug,omitempty"`
	Fundstelle     *Fundstelle   `json:"fundstelle,omitempty"`
}

// DocumentType returns drucksachetyp, falling back to typ
func (r RawRecord) DocumentType() string {
	if r.Drucksachetyp != "" {
		return r.Drucksachetyp
	}
	return r.Typ
}

// FundstelleDatum returns the nested fundstelle date or ""
func (r RawRecord) FundstelleDatum() string {
	if r.Fundstelle == nil {
		return ""
	}
	return r.Fundstelle.Datum
}

// PDFURL returns the nested fundstelle PDF link or ""
func (r RawRecord) PDFURL() string {
	if r.Fundstelle == nil {
		return ""
	}
	return r.Fundstelle.PDFURL
}

// FirstAttribution returns the display name of the first urheber entry.
// Later entries are ignored.
func (r RawRecord) FirstAttribution() string {
	if len(r.Urheber) == 0 {
		return ""
	}
	return r.Urheber[0].DisplayName()
}

// Links is the optional pagination envelope of a list response
type Links struct {
	Next string `json:"next,omitempty"`
}

// ListPage is one page of the drucksache list endpoint
type ListPage struct {
	NumFound  int         `json:"numFound,omitempty"`
	Documents []RawRecord `json:"documents,omitempty"`
	Cursor    string      `json:"cursor,omitempty"`
	Links     *Links      `json:"links,omitempty"`

	// Malformed lists documents that could not be decoded and were left out
	Malformed []MalformedRecord `json:"-"`
}

// MalformedRecord identifies a list document skipped during decoding
type MalformedRecord struct {
	Index int
	Err   string
}

// UnmarshalJSON decodes documents one by one so that a single record with
// an unexpected shape is skipped instead of failing the whole page
func (p *ListPage) UnmarshalJSON(data []byte) error {
	var envelope struct {
		NumFound  int               `json:"numFound"`
		Documents []json.RawMessage `json:"documents"`
		Cursor    string            `json:"cursor"`
		Links     *Links            `json:"links"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	page := ListPage{
		NumFound: envelope.NumFound,
		Cursor:   envelope.Cursor,
		Links:    envelope.Links,
	}
	if envelope.Documents != nil {
		page.Documents = make([]RawRecord, 0, len(envelope.Documents))
	}
	for i, raw := range envelope.Documents {
		var record RawRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			page.Malformed = append(page.Malformed, MalformedRecord{Index: i, Err: err.Error()})
			continue
		}
		page.Documents = append(page.Documents, record)
	}

	*p = page
	return nil
}

// NextLink returns links.next or ""
func (p ListPage) NextLink() string {
	if p.Links == nil {
		return ""
	}
	return p.Links.Next
}

// TextDetail is the drucksache-text detail payload
type TextDetail struct {
	ID         DocumentID  `json:"id,omitempty"`
	Text       *string     `json:"text,omitempty"`
	Fundstelle *Fundstelle `json:"fundstelle,omitempty"`
}

// UsableText returns the trimmed text and whether it is non-blank
func (d *TextDetail) UsableText() (string, bool) {
	if d == nil || d.Text == nil {
		return "", false
	}
	text := strings.TrimSpace(*d.Text)
	return text, text != ""
}

// PDFURL returns the nested fundstelle PDF link or ""
func (d *TextDetail) PDFURL() string {
	if d == nil || d.Fundstelle == nil {
		return ""
	}
	return d.Fundstelle.PDFURL
}

// FundstelleDatum returns the nested fundstelle date or ""
func (d *TextDetail) FundstelleDatum() string {
	if d == nil || d.Fundstelle == nil {
		return ""
	}
	return d.Fundstelle.Datum
}
