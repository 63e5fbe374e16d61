// Package repository contains data access logic separated from HTTP
// handlers. This file defines the sentinel errors shared by the
// repositories so that handlers can map failures to HTTP responses.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue id does not resolve to a row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id does not resolve to a row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show id does not resolve to a row.
var ErrShowNotFound = errors.New("show not found")
