package modeldesc

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when the input contains no root element.
var ErrEmptyDocument = errors.New("document contains no root element")

// ErrUnknownName is returned when an element name, attribute name or
// enum literal is not part of the fixed vocabulary.
type ErrUnknownName struct {
	Kind string // "element", "attribute" or "enum value"
	Name string
}

func (e ErrUnknownName) Error() string {
	return fmt.Sprintf("illegal %s %q", e.Kind, e.Name)
}

// ErrElementTypeMismatch is returned when a reduction pops a child of
// the wrong kind.
type ErrElementTypeMismatch struct {
	Expected string
	Found    Elm
}

func (e ErrElementTypeMismatch) Error() string {
	return fmt.Sprintf("wrong element type, expected %s, found %s", e.Expected, e.Found)
}

// ErrIllegalStructure is returned when a reduction expects a child that
// is not on the stack.
type ErrIllegalStructure struct {
	Expected string
}

func (e ErrIllegalStructure) Error() string {
	return "illegal document structure, expected " + e.Expected
}

// ErrDuplicateBlock is returned when the same optional root block, or a
// second co-simulation variant, appears twice in one document.
type ErrDuplicateBlock struct {
	Block Elm
}

func (e ErrDuplicateBlock) Error() string {
	return fmt.Sprintf("duplicate %s block", e.Block)
}

// ErrParse wraps any error that aborted a parse, together with the input
// line the tokenizer had reached.
type ErrParse struct {
	Err  error
	Line int
}

func (e ErrParse) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err, e.Line)
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

// ErrValidation is returned when the tree parsed structurally but one or
// more declared-type references did not resolve.
type ErrValidation struct {
	Errors int
}

func (e ErrValidation) Error() string {
	return fmt.Sprintf("found %d error(s) in model description", e.Errors)
}
