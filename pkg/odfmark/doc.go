// Package odfmark edits the XML body of OpenDocument text files. It unpacks
// the container, fills named bookmark placeholders and inserts paragraphs in
// content.xml, and repacks a valid container, optionally handing the result
// to an external converter for rendering.
//
// Basic Usage:
//
//	values := map[string]string{
//	    "fox_type_placeholder": "quick brown",
//	    "dog_type_placeholder": "lazy",
//	}
//	if err := odfmark.PopulateFile("input.odt", "output.odt", values); err != nil {
//	    log.Fatal(err)
//	}
//
// Finer-grained edits go through Process with an edit callback:
//
//	err := odfmark.Process("input.odt", "output.odt", func(ed *odfmark.Editor) error {
//	    if err := ed.PopulateBookmark("fox_type_placeholder", "quick brown"); err != nil {
//	        return err
//	    }
//	    _, err := ed.AppendParagraphAfterMarker("fox_type_placeholder",
//	        "No one expects the Spanish Inquisition!")
//	    return err
//	})
//
// The package is not a general document-editing library: it supports exactly
// the bookmark-population and paragraph-insertion operations above.
package odfmark
