// Package repository holds the sentinel errors shared by every persistence
// backend, plus the backend-agnostic test suite.
package repository

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = goerr.New("not found")
