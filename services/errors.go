package services

import "errors"

var (
	ErrSubdomainTaken = errors.New("subdomain already in use")
	ErrSlugTaken      = errors.New("slug already in use for this site")
	ErrInvalidSlug    = errors.New("slug must contain only lowercase letters, digits and hyphens")
	ErrInvalidStatus  = errors.New("invalid content status")
)
