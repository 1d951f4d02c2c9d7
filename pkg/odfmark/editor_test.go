package odfmark

import (
	"strings"
	"testing"
)

func findFirst(doc *Document, tag string) *Element {
	var found *Element
	doc.Root.visit(func(el *Element) bool {
		if el.Tag == tag {
			found = el
			return false
		}
		return true
	})
	return found
}

func TestFindMarkerStart(t *testing.T) {
	tests := []struct {
		name       string
		markerName string
		wantErr    bool
	}{
		{"existing marker", "fox_type_placeholder", false},
		{"second marker", "dog_type_placeholder", false},
		{"missing marker", "no_such_placeholder", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := NewEditor(mustParse(t, testContentXML))

			marker, err := ed.FindMarkerStart(tt.markerName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindMarkerStart() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsMarkerNotFoundError(err) {
					t.Errorf("expected MarkerNotFoundError, got %T", err)
				}
				return
			}
			if marker.Tag != TagBookmarkStart {
				t.Errorf("tag = %q, want %q", marker.Tag, TagBookmarkStart)
			}
			if n, _ := marker.Attr(AttrBookmarkName); n != tt.markerName {
				t.Errorf("name = %q, want %q", n, tt.markerName)
			}
		})
	}
}

func TestFindMarkerStart_DuplicateNamesReturnsFirst(t *testing.T) {
	const dup = `<office:text xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"><text:p text:id="first"><text:bookmark-start text:name="twin"/><text:s/><text:bookmark-end text:name="twin"/></text:p><text:p text:id="second"><text:bookmark-start text:name="twin"/><text:s/><text:bookmark-end text:name="twin"/></text:p></office:text>`

	doc := mustParse(t, dup)
	ed := NewEditor(doc)

	marker, err := ed.FindMarkerStart("twin")
	if err != nil {
		t.Fatalf("FindMarkerStart() error = %v", err)
	}
	parent, ok := doc.Parent(marker)
	if !ok {
		t.Fatal("marker must have a recorded parent")
	}
	if id, _ := parent.Attr("text:id"); id != "first" {
		t.Errorf("duplicate resolution picked paragraph %q, want 'first'", id)
	}
}

func TestMarkers(t *testing.T) {
	ed := NewEditor(mustParse(t, testContentXML))

	got := ed.Markers()
	want := []string{"fox_type_placeholder", "dog_type_placeholder"}
	if len(got) != len(want) {
		t.Fatalf("markers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("markers[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPopulateBookmark(t *testing.T) {
	doc := mustParse(t, testContentXML)
	ed := NewEditor(doc)
	nodesBefore := countNodes(doc.Root)

	if err := ed.PopulateBookmark("fox_type_placeholder", "hello"); err != nil {
		t.Fatalf("PopulateBookmark() error = %v", err)
	}

	marker, err := ed.FindMarkerStart("fox_type_placeholder")
	if err != nil {
		t.Fatal(err)
	}
	parent, _ := doc.Parent(marker)
	var idx int
	for i, c := range parent.Children {
		if c == marker {
			idx = i
			break
		}
	}
	span := parent.Children[idx+1]
	if span.Tag != TagSpan {
		t.Errorf("sibling tag = %q, want %q", span.Tag, TagSpan)
	}
	if span.Text != "hello" {
		t.Errorf("sibling text = %q, want 'hello'", span.Text)
	}

	if got := countNodes(doc.Root); got != nodesBefore {
		t.Errorf("node count changed: %d -> %d", nodesBefore, got)
	}

	// The other bookmark's placeholder is untouched.
	other, err := ed.FindMarkerStart("dog_type_placeholder")
	if err != nil {
		t.Fatal(err)
	}
	otherParent, _ := doc.Parent(other)
	for i, c := range otherParent.Children {
		if c == other {
			if sib := otherParent.Children[i+1]; sib.Tag != "text:s" {
				t.Errorf("untouched placeholder tag = %q, want text:s", sib.Tag)
			}
		}
	}
}

func TestPopulateBookmark_NotFoundLeavesTreeUnchanged(t *testing.T) {
	doc := mustParse(t, testContentXML)
	pristine := mustParse(t, testContentXML)

	err := NewEditor(doc).PopulateBookmark("no_such_placeholder", "hello")
	if !IsMarkerNotFoundError(err) {
		t.Fatalf("expected MarkerNotFoundError, got %v", err)
	}
	if !sameStructure(doc.Root, pristine.Root) {
		t.Error("failed populate must leave the tree unmodified")
	}
}

func TestPopulateBookmark_MissingSibling(t *testing.T) {
	const lastChild = `<text:p xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"><text:bookmark-start text:name="tail_marker"/></text:p>`

	err := NewEditor(mustParse(t, lastChild)).PopulateBookmark("tail_marker", "x")
	if !IsMissingSiblingError(err) {
		t.Errorf("expected MissingSiblingError, got %v", err)
	}
}

func TestPopulateBookmark_OrphanMarker(t *testing.T) {
	// A marker as document root has no recorded parent.
	const orphan = `<text:bookmark-start xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" text:name="rootless"/>`

	err := NewEditor(mustParse(t, orphan)).PopulateBookmark("rootless", "x")
	if !IsOrphanMarkerError(err) {
		t.Errorf("expected OrphanMarkerError, got %v", err)
	}
}

func TestInsertParagraphAfter(t *testing.T) {
	doc := mustParse(t, testContentXML)
	ed := NewEditor(doc)

	paragraph := findFirst(doc, TagParagraph)
	body, _ := doc.Parent(paragraph)
	siblingsBefore := append([]*Element(nil), body.Children...)

	inserted, err := ed.InsertParagraphAfter(paragraph, paragraph, "new text")
	if err != nil {
		t.Fatalf("InsertParagraphAfter() error = %v", err)
	}

	if body.Children[1] != inserted {
		t.Error("new paragraph must sit immediately after the reference node")
	}
	if inserted.Tag != TagParagraph || inserted.Text != "new text" {
		t.Errorf("inserted = <%s> %q", inserted.Tag, inserted.Text)
	}
	if style, _ := inserted.Attr("text:style-name"); style != "Standard" {
		t.Errorf("copied style = %q, want Standard", style)
	}
	if len(inserted.Children) != 0 {
		t.Error("attribute copy must be shallow: no children copied")
	}

	// Copied attributes are independent of the source.
	inserted.SetAttr("text:style-name", "Other")
	if style, _ := paragraph.Attr("text:style-name"); style != "Standard" {
		t.Error("mutating the copy must not touch the source attributes")
	}

	// Prior siblings keep identity and position.
	for i, el := range siblingsBefore {
		pos := i
		if i >= 1 {
			pos = i + 1
		}
		if body.Children[pos] != el {
			t.Errorf("sibling %d moved unexpectedly", i)
		}
	}

	// The parent index does not learn about the insertion.
	if _, ok := doc.Parent(inserted); ok {
		t.Error("parent index must not know the inserted node")
	}
	doc.RebuildParents()
	if p, ok := doc.Parent(inserted); !ok || p != body {
		t.Error("rebuilt parent index must record the inserted node")
	}
}

func TestInsertParagraphAfter_Orphan(t *testing.T) {
	doc := mustParse(t, testContentXML)
	ed := NewEditor(doc)

	_, err := ed.InsertParagraphAfter(doc.Root, doc.Root, "x")
	if !IsOrphanNodeError(err) {
		t.Errorf("expected OrphanNodeError, got %v", err)
	}
}

func TestAppendParagraphAfterMarker(t *testing.T) {
	doc := mustParse(t, testContentXML)
	ed := NewEditor(doc)

	inserted, err := ed.AppendParagraphAfterMarker("fox_type_placeholder", "No one expects the Spanish Inquisition!")
	if err != nil {
		t.Fatalf("AppendParagraphAfterMarker() error = %v", err)
	}

	out := string(serialized(t, doc))
	if !strings.Contains(out, `<text:p text:style-name="Standard">No one expects the Spanish Inquisition!</text:p>`) {
		t.Errorf("serialized output missing appended paragraph: %s", out)
	}
	if style, _ := inserted.Attr("text:style-name"); style != "Standard" {
		t.Errorf("appended paragraph style = %q, want Standard", style)
	}
}
