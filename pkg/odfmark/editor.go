package odfmark

import "slices"

// OpenDocument text-model element and attribute names used by the editor.
const (
	TagBookmarkStart = "text:bookmark-start"
	TagBookmarkEnd   = "text:bookmark-end"
	TagBookmark      = "text:bookmark"
	TagSpan          = "text:span"
	TagParagraph     = "text:p"

	AttrBookmarkName = "text:name"
)

// Editor performs bookmark-population and paragraph-insertion edits on a
// loaded Document. All edits mutate the tree in place; the tree is owned by
// a single editor for the duration of one run.
type Editor struct {
	doc *Document
}

// NewEditor creates an Editor over doc.
func NewEditor(doc *Document) *Editor {
	return &Editor{doc: doc}
}

// Document returns the underlying document.
func (e *Editor) Document() *Document {
	return e.doc
}

// FindMarkerStart returns the bookmark start marker with the given name.
// When several markers share a name, the first one in document order
// (depth first) wins. Returns a MarkerNotFoundError when no marker matches.
func (e *Editor) FindMarkerStart(name string) (*Element, error) {
	var found *Element
	e.doc.Root.visit(func(el *Element) bool {
		if el.Tag == TagBookmarkStart {
			if n, ok := el.Attr(AttrBookmarkName); ok && n == name {
				found = el
				return false
			}
		}
		return true
	})
	if found == nil {
		return nil, NewMarkerNotFoundError(name)
	}
	return found, nil
}

// Markers returns the names of all bookmark markers in document order.
// Paired markers (bookmark-start) and point markers (bookmark) both count;
// each name is reported once.
func (e *Editor) Markers() []string {
	var names []string
	seen := make(map[string]bool)
	e.doc.Root.visit(func(el *Element) bool {
		if el.Tag == TagBookmarkStart || el.Tag == TagBookmark {
			if n, ok := el.Attr(AttrBookmarkName); ok && !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
		return true
	})
	return names
}

// PopulateBookmark fills the bookmark named name with contents. The marker's
// next sibling (the placeholder between bookmark-start and bookmark-end) is
// retagged to a span and its text replaced; its attributes and children are
// left untouched. The parent index stays valid since no node is moved.
func (e *Editor) PopulateBookmark(name, contents string) error {
	start, err := e.FindMarkerStart(name)
	if err != nil {
		return err
	}

	parent, ok := e.doc.Parent(start)
	if !ok {
		return NewOrphanMarkerError(name)
	}

	idx := slices.Index(parent.Children, start)
	if idx < 0 || idx+1 >= len(parent.Children) {
		return NewMissingSiblingError(name)
	}

	sibling := parent.Children[idx+1]
	sibling.Tag = TagSpan
	sibling.Text = contents

	logger.Debug("populated bookmark", "name", name)
	return nil
}

// InsertParagraphAfter creates a new paragraph carrying text, copying the
// attributes of attrSource (attributes only, no children), and inserts it
// immediately after ref in ref's parent's child sequence.
//
// The parent index is not updated: the new paragraph has no recorded parent
// until Document.RebuildParents is called.
func (e *Editor) InsertParagraphAfter(ref, attrSource *Element, text string) (*Element, error) {
	parent, ok := e.doc.Parent(ref)
	if !ok {
		return nil, NewOrphanNodeError(ref.Tag)
	}

	para := &Element{
		Tag:   TagParagraph,
		Attrs: slices.Clone(attrSource.Attrs),
		Text:  text,
	}

	idx := slices.Index(parent.Children, ref)
	if idx < 0 {
		return nil, NewOrphanNodeError(ref.Tag)
	}
	parent.Children = slices.Insert(parent.Children, idx+1, para)

	logger.Debug("inserted paragraph", "after", ref.Tag)
	return para, nil
}

// AppendParagraphAfterMarker inserts a new paragraph directly after the
// paragraph containing the named marker, cloning that paragraph's
// attributes so the new one picks up the same style.
func (e *Editor) AppendParagraphAfterMarker(markerName, text string) (*Element, error) {
	start, err := e.FindMarkerStart(markerName)
	if err != nil {
		return nil, err
	}
	paragraph, ok := e.doc.Parent(start)
	if !ok {
		return nil, NewOrphanMarkerError(markerName)
	}
	return e.InsertParagraphAfter(paragraph, paragraph, text)
}
