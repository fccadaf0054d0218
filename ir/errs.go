package ir

import "errors"

var (
	// ErrPathSyntax reports a path string that cannot be tokenized.
	// Lookups that tokenize fine but address nothing do not return
	// errors.
	ErrPathSyntax = errors.New("path syntax error")

	// ErrParse reports input that could not be decoded into a tree.
	ErrParse = errors.New("parse error")
)
