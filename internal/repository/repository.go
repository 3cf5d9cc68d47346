package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, cache) inside this directory.

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")
