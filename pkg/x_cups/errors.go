// file:dline/pkg/x_cups/errors.go
package x_cups

import "errors"

var (
	ErrLabels    = errors.New("labels must be a permutation of 1..n")
	ErrNoLabels  = errors.New("no labels given")
	ErrTotal     = errors.New("invalid cup total")
	ErrWidth     = errors.New("invalid line width")
	ErrThreshold = errors.New("negative rebuild or log threshold")
)
