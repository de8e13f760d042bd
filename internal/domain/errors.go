package domain

import "errors"

var (
	// ErrInvalidCart is returned by LoadCart and LoadProduct when a document
	// misses a required key, carries a wrong type or an unknown product field.
	ErrInvalidCart = errors.New("invalid cart document")

	// ErrMalformedContents marks a cart detail row whose contents are not a
	// JSON array of product ids.
	ErrMalformedContents = errors.New("malformed cart contents")

	ErrProductNotFound = errors.New("product not found")
)
