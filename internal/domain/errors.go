package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// ErrNotFound is the parent of every "valid input, no stored data" error.
	ErrNotFound = errors.New("not found")

	// Coordinate errors
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidQuery      = errors.New("invalid search query")
	ErrInvalidManifest   = errors.New("invalid url manifest")

	// Storage errors
	ErrComponentNotFound = fmt.Errorf("component %w", ErrNotFound)
	ErrAssetNotFound     = fmt.Errorf("asset %w", ErrNotFound)
	ErrBlobNotFound      = fmt.Errorf("blob %w", ErrNotFound)
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrUnknownAssetKind  = errors.New("unknown asset kind")
	ErrStorageIO         = errors.New("storage I/O failure")
	ErrReadOnlyTx        = errors.New("write in read-only transaction")
	ErrAlreadyExists     = errors.New("already exists")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
