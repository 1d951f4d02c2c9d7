package odfmark

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// MimetypeMember is the distinguished container member that identifies the
// document type. Per the OpenDocument spec (v1.2 §3.3) it must be the first
// entry of the container, stored uncompressed, with no extra header fields,
// so that readers can probe the file type without inflating anything.
const MimetypeMember = "mimetype"

// Unpack extracts every member of the container at containerPath into
// destDir, preserving relative paths and directory structure.
//
// The container is trusted to come from a well-formed authoring tool; member
// paths are not validated against traversal.
func Unpack(containerPath, destDir string) error {
	r, err := zip.OpenReader(containerPath)
	if err != nil {
		return NewArchiveReadError(containerPath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		target := filepath.Join(destDir, filepath.FromSlash(f.Name))

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return NewArchiveReadError(containerPath, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return NewArchiveReadError(containerPath, err)
		}
		if err := extractMember(f, target); err != nil {
			return NewArchiveReadError(containerPath, err)
		}
	}

	logger.Debug("unpacked container", "path", containerPath, "members", len(r.File))
	return nil
}

func extractMember(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Repack creates a new container at containerPath from the contents of
// sourceDir. The mimetype member at the root of sourceDir is written first
// and stored uncompressed; every other file is written afterwards, deflated,
// under its forward-slash path relative to sourceDir.
//
// A partially written container is removed on failure.
func Repack(sourceDir, containerPath string) error {
	mimetype, err := os.ReadFile(filepath.Join(sourceDir, MimetypeMember))
	if err != nil {
		return NewArchiveWriteError(containerPath, MimetypeMember, err)
	}

	out, err := os.Create(containerPath)
	if err != nil {
		return NewArchiveWriteError(containerPath, "", err)
	}

	if err := writeContainer(out, sourceDir, mimetype); err != nil {
		out.Close()
		os.Remove(containerPath)
		return NewArchiveWriteError(containerPath, "", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(containerPath)
		return NewArchiveWriteError(containerPath, "", err)
	}

	logger.Debug("repacked container", "path", containerPath)
	return nil
}

func writeContainer(out io.Writer, sourceDir string, mimetype []byte) error {
	w := zip.NewWriter(out)

	// Leaving the header's Modified time zero keeps the zip writer from
	// emitting an extended-timestamp extra field on the mimetype entry.
	fw, err := w.CreateHeader(&zip.FileHeader{
		Name:   MimetypeMember,
		Method: zip.Store,
	})
	if err != nil {
		return err
	}
	if _, err := fw.Write(mimetype); err != nil {
		return err
	}

	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if name == MimetypeMember {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		fw, err := w.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return err
		}
		_, err = fw.Write(content)
		return err
	})
	if err != nil {
		return err
	}

	return w.Close()
}
