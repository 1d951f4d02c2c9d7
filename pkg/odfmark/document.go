package odfmark

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"os"
)

// Attr is a single attribute with a prefix-qualified key, e.g. "text:name".
type Attr struct {
	Key   string
	Value string
}

// Element is one node of the document tree. Tags and attribute keys carry
// the short namespace prefixes used in the source document. Text is the
// character data before the first child; Tail is the character data that
// follows the element inside its parent.
//
// Element exposes only parent-to-child navigation; child-to-parent lookups
// go through the Document's parent index.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Tail     string
	Children []*Element
}

// Attr returns the value of the attribute with the given qualified key.
func (el *Element) Attr(key string) (string, bool) {
	for _, a := range el.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the attribute with the given qualified key, appending it if
// it is not present.
func (el *Element) SetAttr(key, value string) {
	for i := range el.Attrs {
		if el.Attrs[i].Key == key {
			el.Attrs[i].Value = value
			return
		}
	}
	el.Attrs = append(el.Attrs, Attr{Key: key, Value: value})
}

// visit walks the subtree in document order (depth first, the element before
// its children). It stops early when fn returns false.
func (el *Element) visit(fn func(*Element) bool) bool {
	if !fn(el) {
		return false
	}
	for _, c := range el.Children {
		if !c.visit(fn) {
			return false
		}
	}
	return true
}

// Document is an owned, mutable XML tree plus the namespace prefix registry
// captured at parse time and a parent index built once after parse.
//
// The parent index is a snapshot: nodes inserted after construction are not
// registered, and Parent lookups for them fail until RebuildParents is
// called.
type Document struct {
	Root *Element

	prefixByURI map[string]string
	parents     map[*Element]*Element
}

// Load parses the XML file at xmlPath into a Document and builds the parent
// index.
func Load(xmlPath string) (*Document, error) {
	data, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, NewMalformedXMLError(xmlPath, err)
	}
	doc, err := parseDocument(data)
	if err != nil {
		return nil, NewMalformedXMLError(xmlPath, err)
	}
	logger.Debug("loaded document", "path", xmlPath, "nodes", len(doc.parents)+1)
	return doc, nil
}

// Parse parses in-memory XML into a Document and builds the parent index.
func Parse(data []byte) (*Document, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, NewMalformedXMLError("", err)
	}
	return doc, nil
}

func parseDocument(data []byte) (*Document, error) {
	doc := &Document{prefixByURI: make(map[string]string)}
	d := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			// Declaration, comments, and leading whitespace before the root.
			continue
		}
		root, err := doc.parseElement(d, start)
		if err != nil {
			return nil, err
		}
		doc.Root = root
		doc.RebuildParents()
		return doc, nil
	}
}

func (doc *Document) parseElement(d *xml.Decoder, start xml.StartElement) (*Element, error) {
	// Namespace declarations must be registered before the element's own
	// name is qualified; the root declares the prefixes it uses itself.
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" {
			doc.prefixByURI[a.Value] = a.Name.Local
		} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
			doc.prefixByURI[a.Value] = ""
		}
	}

	el := &Element{Tag: doc.qualify(start.Name)}
	for _, a := range start.Attr {
		el.Attrs = append(el.Attrs, Attr{Key: doc.qualifyAttr(a.Name), Value: a.Value})
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if n := len(el.Children); n > 0 {
				el.Children[n-1].Tail += string(t)
			} else {
				el.Text += string(t)
			}
		case xml.StartElement:
			child, err := doc.parseElement(d, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			return el, nil
		}
	}
}

// qualify maps a decoder-resolved name back to its short prefixed form.
func (doc *Document) qualify(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if prefix, ok := doc.prefixByURI[n.Space]; ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	// Unbound prefixes survive in Space verbatim.
	return n.Space + ":" + n.Local
}

func (doc *Document) qualifyAttr(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	if n.Space == "" && n.Local == "xmlns" {
		return "xmlns"
	}
	return doc.qualify(n)
}

// Prefix returns the short prefix registered for a namespace URI.
func (doc *Document) Prefix(uri string) (string, bool) {
	p, ok := doc.prefixByURI[uri]
	return p, ok
}

// Parent returns the recorded parent of el. It reports false for the root
// and for any node inserted after the index was last (re)built.
func (doc *Document) Parent(el *Element) (*Element, bool) {
	p, ok := doc.parents[el]
	return p, ok
}

// RebuildParents rebuilds the parent index from the current tree structure.
// Required after structural mutations if further parent lookups are needed.
func (doc *Document) RebuildParents() {
	doc.parents = make(map[*Element]*Element)
	doc.Root.visit(func(el *Element) bool {
		for _, c := range el.Children {
			doc.parents[c] = el
		}
		return true
	})
}

// Serialize writes the tree to xmlPath as UTF-8 XML with a declaration,
// using the prefixes registered at parse time (tags and attribute keys kept
// their short prefixes, so writing them verbatim reuses them).
func (doc *Document) Serialize(xmlPath string) error {
	f, err := os.Create(xmlPath)
	if err != nil {
		return NewWriteError(xmlPath, err)
	}
	if err := doc.WriteTo(f); err != nil {
		f.Close()
		return NewWriteError(xmlPath, err)
	}
	if err := f.Close(); err != nil {
		return NewWriteError(xmlPath, err)
	}
	logger.Debug("serialized document", "path", xmlPath)
	return nil
}

// WriteTo writes the tree as XML to w.
func (doc *Document) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	writeElement(bw, doc.Root)
	return bw.Flush()
}

func writeElement(w *bufio.Writer, el *Element) {
	w.WriteByte('<')
	w.WriteString(el.Tag)
	for _, a := range el.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Key)
		w.WriteString(`="`)
		writeEscaped(w, a.Value, true)
		w.WriteByte('"')
	}

	if el.Text == "" && len(el.Children) == 0 {
		w.WriteString("/>")
		return
	}

	w.WriteByte('>')
	writeEscaped(w, el.Text, false)
	for _, c := range el.Children {
		writeElement(w, c)
		writeEscaped(w, c.Tail, false)
	}
	w.WriteString("</")
	w.WriteString(el.Tag)
	w.WriteByte('>')
}

// writeEscaped writes s with XML special characters escaped. Quotes only
// need escaping inside attribute values.
func writeEscaped(w *bufio.Writer, s string, attr bool) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			if !attr {
				continue
			}
			esc = "&quot;"
		default:
			continue
		}
		w.WriteString(s[last:i])
		w.WriteString(esc)
		last = i + 1
	}
	w.WriteString(s[last:])
}
