// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an operation cannot proceed
// due to existing dependent records (e.g. deleting an artist that
// still has albums).
package repository

import "errors"

// ErrConflict is returned when a delete cannot be performed
// because of dependent records, such as removing an album that
// still has songs. Handlers should translate this into an HTTP
// 409 response.
var ErrConflict = errors.New("conflict")

// ErrArtistNotFound is returned when an artist lookup fails.
var ErrArtistNotFound = errors.New("artist not found")

// ErrAlbumNotFound is returned when an album lookup fails.
var ErrAlbumNotFound = errors.New("album not found")

// ErrSongNotFound is returned when a song lookup fails.
var ErrSongNotFound = errors.New("song not found")
