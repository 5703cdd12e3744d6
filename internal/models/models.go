package models

import (
	"encoding/json"
)

// Record is one trip, status change, or event as returned by a provider.
// Contents are opaque to the client; only pagination structure is interpreted.
type Record map[string]any

// Links holds the pagination links of a page
// Providers signal the end of a result set by omitting or nulling "next"
type Links struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Page is one response body from a provider endpoint
type Page struct {
	Data  map[string]json.RawMessage `json:"data"`
	Links *Links                     `json:"links"`
}

// Records extracts the record list for the given resource from the page.
// A page without a data object, or without an entry for the resource,
// is malformed; an entry holding an empty array is a valid empty page.
func (p *Page) Records(resource string) ([]Record, error) {
	if p.Data == nil {
		return nil, &MalformedResponseError{Resource: resource, Reason: `response has no "data" object`}
	}

	raw, ok := p.Data[resource]
	if !ok {
		return nil, &MalformedResponseError{Resource: resource, Reason: `"data" object has no entry for resource`}
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &MalformedResponseError{Resource: resource, Reason: "resource entry is not an array of records", Err: err}
	}

	return records, nil
}

// NextURL returns the next page URL, or "" when this is the last page
func (p *Page) NextURL() string {
	if p.Links == nil {
		return ""
	}
	return p.Links.Next
}
