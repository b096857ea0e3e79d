// Package sax adapts the underlying XML tokenizer (encoding/xml) to
// simple start-tag/end-tag/character-data callbacks. It performs no
// vocabulary checking of its own; that is the handler's job. The
// tokenizer guarantees well-formed, balanced events, and is stopped by
// the first error a handler returns.
package sax

import (
	"encoding/xml"
	"io"
)

// Attribute is one name/value pair as delivered by the tokenizer, before
// any vocabulary canonicalization.
type Attribute struct {
	Name  string
	Value string
}

// Handler receives the tokenizer events for one document. Returning a
// non-nil error from any callback stops tokenization immediately; no
// further events are delivered.
type Handler interface {
	StartElement(name string, attrs []Attribute) error
	EndElement(name string) error
	Characters(data []byte) error
}

// Walk drives the decoder to end of input, dispatching each token to the
// handler. Comments, processing instructions and directives are not part
// of the event model and are skipped.
func Walk(dec *xml.Decoder, h Handler) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var attrs []Attribute
			if len(t.Attr) > 0 {
				attrs = make([]Attribute, 0, len(t.Attr))
				for _, a := range t.Attr {
					attrs = append(attrs, Attribute{Name: a.Name.Local, Value: a.Value})
				}
			}
			if err := h.StartElement(t.Name.Local, attrs); err != nil {
				return err
			}
		case xml.EndElement:
			if err := h.EndElement(t.Name.Local); err != nil {
				return err
			}
		case xml.CharData:
			if err := h.Characters([]byte(t)); err != nil {
				return err
			}
		}
	}
}
