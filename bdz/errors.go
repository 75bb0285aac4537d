package bdz

import "errors"

// ErrExpansionTooSmall indicates WithExpansion was given a value below
// graph3.MinExpansion. Classification: fatal parameter error.
var ErrExpansionTooSmall = errors.New("bdz: expansion constant is below the minimum")

// ErrHashSizeTooSmall indicates WithHashSize was given a value below 3;
// the BDZ construction needs three independent hash words per key.
// Classification: fatal parameter error.
var ErrHashSizeTooSmall = errors.New("bdz: hash size must be at least 3")

// ErrNoKeys indicates Generate was called with an empty key set.
// Classification: fatal parameter error.
var ErrNoKeys = errors.New("bdz: no keys given")

// ErrMaxAttemptsExceeded indicates every attempt up to the WithMaxAttempts
// cap produced a degenerate edge or an unpeelable graph. Classification:
// fatal — the caller should raise the expansion constant or the attempt
// cap rather than retry with the same parameters.
var ErrMaxAttemptsExceeded = errors.New("bdz: exceeded maximum construction attempts")
