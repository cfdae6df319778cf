// Package errors holds the service domain error types.
package errors

import (
	stderr "errors"
	"fmt"

	"go.lsp.dev/uri"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

// ResourceNotFoundError is a service domain error for a notebook resource
// with no stored entry.
type ResourceNotFoundError struct {
	Resource uri.URI
}

// Error is an implementation of the error interface.
func (n *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource %q not found", n.Resource)
}

// NotFoundResource returns the resource and true if ResourceNotFoundError is
// part of the error chain.
func NotFoundResource(e error) (_ uri.URI, ok bool) {
	var nf *ResourceNotFoundError
	if !stderr.As(e, &nf) {
		return "", false
	}
	return nf.Resource, true
}
