package opendata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// xmlNode is a decoded element with children. Every child name maps to the
// ordered sequence of its occurrences; a leaf occurrence is its text, an
// element with children is another xmlNode.
type xmlNode map[string][]any

// decodeXMLTree decodes body into a single-entry mapping from the root
// element name to its value.
func decodeXMLTree(body []byte) (xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("no root element")
			}
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			value, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			return xmlNode{start.Name.Local: {value}}, nil
		}
	}
}

func decodeElement(dec *xml.Decoder) (any, error) {
	var text strings.Builder
	var children xmlNode

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = xmlNode{}
			}
			children[t.Name.Local] = append(children[t.Name.Local], child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if children != nil {
				return children, nil
			}
			return text.String(), nil
		}
	}
}
