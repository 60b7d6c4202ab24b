package domain

import "errors"

// ErrDocumentNotFound is returned when the backing framework file does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// ErrMalformedDocument is returned when a framework file cannot be parsed or
// does not have the expected {"tactics": node} shape.
var ErrMalformedDocument = errors.New("malformed document")

// ErrNodeNotFound is returned when an id does not match any node.
var ErrNodeNotFound = errors.New("node not found")

// ErrRootDeletion is returned when a caller tries to delete the root node.
var ErrRootDeletion = errors.New("cannot delete the root node")
