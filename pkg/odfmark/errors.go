// Package odfmark provides custom error types for better error handling and reporting.
package odfmark

import (
	"errors"
	"fmt"
)

// ArchiveReadError represents a failure to open or extract a container file
type ArchiveReadError struct {
	Path  string
	Cause error
}

func (e *ArchiveReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("archive read error for '%s': %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("archive read error for '%s'", e.Path)
}

func (e *ArchiveReadError) Unwrap() error {
	return e.Cause
}

// NewArchiveReadError creates a new archive read error
func NewArchiveReadError(path string, cause error) error {
	return &ArchiveReadError{
		Path:  path,
		Cause: cause,
	}
}

// ArchiveWriteError represents a failure to assemble a container file
type ArchiveWriteError struct {
	Path   string
	Member string
	Cause  error
}

func (e *ArchiveWriteError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("archive write error for '%s' (member '%s'): %v", e.Path, e.Member, e.Cause)
	}
	return fmt.Sprintf("archive write error for '%s': %v", e.Path, e.Cause)
}

func (e *ArchiveWriteError) Unwrap() error {
	return e.Cause
}

// NewArchiveWriteError creates a new archive write error
func NewArchiveWriteError(path, member string, cause error) error {
	return &ArchiveWriteError{
		Path:   path,
		Member: member,
		Cause:  cause,
	}
}

// MalformedXMLError represents a failure to parse a document XML member
type MalformedXMLError struct {
	Path  string
	Cause error
}

func (e *MalformedXMLError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed XML in '%s': %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("malformed XML: %v", e.Cause)
}

func (e *MalformedXMLError) Unwrap() error {
	return e.Cause
}

// NewMalformedXMLError creates a new malformed XML error
func NewMalformedXMLError(path string, cause error) error {
	return &MalformedXMLError{
		Path:  path,
		Cause: cause,
	}
}

// MarkerNotFoundError indicates that no bookmark start marker matched the
// requested name
type MarkerNotFoundError struct {
	Name string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("no bookmark marker named '%s'", e.Name)
}

// NewMarkerNotFoundError creates a new marker not found error
func NewMarkerNotFoundError(name string) error {
	return &MarkerNotFoundError{Name: name}
}

// OrphanMarkerError indicates a bookmark marker with no recorded parent.
// This points at a stale parent index or malformed input; it should not
// occur for a well-formed document.
type OrphanMarkerError struct {
	Name string
}

func (e *OrphanMarkerError) Error() string {
	return fmt.Sprintf("bookmark marker '%s' has no recorded parent", e.Name)
}

// NewOrphanMarkerError creates a new orphan marker error
func NewOrphanMarkerError(name string) error {
	return &OrphanMarkerError{Name: name}
}

// MissingSiblingError indicates a bookmark marker that is the last child of
// its parent. The expected shape is marker start, placeholder, marker end.
type MissingSiblingError struct {
	Name string
}

func (e *MissingSiblingError) Error() string {
	return fmt.Sprintf("bookmark marker '%s' has no following sibling to populate", e.Name)
}

// NewMissingSiblingError creates a new missing sibling error
func NewMissingSiblingError(name string) error {
	return &MissingSiblingError{Name: name}
}

// OrphanNodeError indicates a reference node with no recorded parent
type OrphanNodeError struct {
	Tag string
}

func (e *OrphanNodeError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("node <%s> has no recorded parent", e.Tag)
	}
	return "node has no recorded parent"
}

// NewOrphanNodeError creates a new orphan node error
func NewOrphanNodeError(tag string) error {
	return &OrphanNodeError{Tag: tag}
}

// WriteError represents an I/O failure while writing document output
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for '%s': %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a new write error
func NewWriteError(path string, cause error) error {
	return &WriteError{
		Path:  path,
		Cause: cause,
	}
}

// IsArchiveReadError checks if an error is an archive read error
func IsArchiveReadError(err error) bool {
	var e *ArchiveReadError
	return errors.As(err, &e)
}

// IsArchiveWriteError checks if an error is an archive write error
func IsArchiveWriteError(err error) bool {
	var e *ArchiveWriteError
	return errors.As(err, &e)
}

// IsMalformedXMLError checks if an error is a malformed XML error
func IsMalformedXMLError(err error) bool {
	var e *MalformedXMLError
	return errors.As(err, &e)
}

// IsMarkerNotFoundError checks if an error is a marker not found error
func IsMarkerNotFoundError(err error) bool {
	var e *MarkerNotFoundError
	return errors.As(err, &e)
}

// IsOrphanMarkerError checks if an error is an orphan marker error
func IsOrphanMarkerError(err error) bool {
	var e *OrphanMarkerError
	return errors.As(err, &e)
}

// IsMissingSiblingError checks if an error is a missing sibling error
func IsMissingSiblingError(err error) bool {
	var e *MissingSiblingError
	return errors.As(err, &e)
}

// IsOrphanNodeError checks if an error is an orphan node error
func IsOrphanNodeError(err error) bool {
	var e *OrphanNodeError
	return errors.As(err, &e)
}

// IsWriteError checks if an error is a write error
func IsWriteError(err error) bool {
	var e *WriteError
	return errors.As(err, &e)
}
