package odfmark

import (
	"os"
	"path/filepath"
	"sort"
)

// ContentMember is the container member holding the document body XML.
const ContentMember = "content.xml"

// Process runs one full edit pipeline: unpack inputPath into a scratch
// directory, load the content document, apply edit, serialize, and repack
// into outputPath. The scratch directory is removed on every exit path. Any
// failure aborts before the output container is written.
func Process(inputPath, outputPath string, edit func(ed *Editor) error) error {
	scratch, err := os.MkdirTemp("", "odfmark-")
	if err != nil {
		return NewWriteError(outputPath, err)
	}
	defer os.RemoveAll(scratch)
	logger.Debug("scratch directory created", "path", scratch)

	if err := Unpack(inputPath, scratch); err != nil {
		return err
	}

	contentPath := filepath.Join(scratch, ContentMember)
	doc, err := Load(contentPath)
	if err != nil {
		return err
	}

	if err := edit(NewEditor(doc)); err != nil {
		return err
	}

	if err := doc.Serialize(contentPath); err != nil {
		return err
	}

	return Repack(scratch, outputPath)
}

// PopulateFile populates the named bookmarks of the container at inputPath
// and writes the edited container to outputPath. Bookmarks are populated in
// name order so repeated runs apply edits deterministically.
func PopulateFile(inputPath, outputPath string, values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	return Process(inputPath, outputPath, func(ed *Editor) error {
		for _, name := range names {
			if err := ed.PopulateBookmark(name, values[name]); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadMarkers unpacks the container at inputPath and returns its bookmark
// marker names in document order, without writing any output.
func ReadMarkers(inputPath string) ([]string, error) {
	scratch, err := os.MkdirTemp("", "odfmark-")
	if err != nil {
		return nil, NewArchiveReadError(inputPath, err)
	}
	defer os.RemoveAll(scratch)

	if err := Unpack(inputPath, scratch); err != nil {
		return nil, err
	}
	doc, err := Load(filepath.Join(scratch, ContentMember))
	if err != nil {
		return nil, err
	}
	return NewEditor(doc).Markers(), nil
}
