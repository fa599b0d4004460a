// Package errors provides the error value and error code catalog used to
// report failures across the assembler.
package errors

import (
	"fmt"
	"strconv"
)

// ErrorCode represents a specific failure kind.
// The set of codes is closed; numeric values are stable and may be persisted.
type ErrorCode uint8

const (
	// CodeNone indicates the absence of an error. It is the zero value.
	CodeNone ErrorCode = iota

	// Validity errors.

	// CodeInvalidMode indicates an operation is not valid in the current machine mode.
	CodeInvalidMode

	// CodeNotInitialized indicates an object was used before it was initialized.
	CodeNotInitialized

	// CodeInvalidOperation indicates the requested operation is not allowed.
	CodeInvalidOperation

	// CodeInvalidParameter indicates an argument is invalid.
	CodeInvalidParameter

	// Resource errors.

	// CodeFileNotFound indicates a file does not exist.
	CodeFileNotFound

	// CodeAccessDenied indicates access to a resource was refused.
	CodeAccessDenied

	// CodeOutOfMemory indicates an allocation could not be satisfied.
	CodeOutOfMemory

	// Symbol errors.

	// CodeLabelNotFound indicates a label does not exist.
	CodeLabelNotFound

	// CodeUnresolvedLabel indicates a label was referenced but never bound.
	CodeUnresolvedLabel

	// CodeInvalidLabel indicates a label handle is not valid.
	CodeInvalidLabel

	// CodeLabelAlreadyBound indicates a label was bound more than once.
	CodeLabelAlreadyBound

	// CodeSectionNotFound indicates a section does not exist.
	CodeSectionNotFound

	// CodeSectionAlreadyBound indicates a section was bound more than once.
	CodeSectionAlreadyBound

	// Structural errors.

	// CodeSignatureMismatch indicates operands do not match any instruction signature.
	CodeSignatureMismatch

	// CodeInvalidInstruction indicates an instruction is malformed.
	CodeInvalidInstruction

	// CodeOutOfBounds indicates an index or offset is out of range.
	CodeOutOfBounds

	// CodeImpossibleInstruction indicates an instruction cannot be encoded.
	CodeImpossibleInstruction

	// CodeEmptyState indicates an operation requires state that is empty.
	CodeEmptyState

	// CodeImpossibleRelocation indicates a relocation cannot be applied.
	CodeImpossibleRelocation

	// codeCount is the number of codes. Keep it last.
	codeCount
)

type codeInfo struct {
	name     string
	message  string
	category Category
}

// catalog maps every code to its name, default message and category.
// Entries are keyed so that reordering the constants cannot misalign them.
var catalog = [...]codeInfo{
	CodeNone:                  {"None", "No error", CategoryNone},
	CodeInvalidMode:           {"InvalidMode", "Invalid mode", CategoryValidity},
	CodeNotInitialized:        {"NotInitialized", "Not initialized", CategoryValidity},
	CodeInvalidOperation:      {"InvalidOperation", "Invalid operation", CategoryValidity},
	CodeInvalidParameter:      {"InvalidParameter", "Invalid parameter", CategoryValidity},
	CodeFileNotFound:          {"FileNotFound", "File not found", CategoryResourceAccess},
	CodeAccessDenied:          {"AccessDenied", "Access denied", CategoryResourceAccess},
	CodeOutOfMemory:           {"OutOfMemory", "Out of memory", CategoryResourceExhaustion},
	CodeLabelNotFound:         {"LabelNotFound", "Label not found", CategorySymbolResolution},
	CodeUnresolvedLabel:       {"UnresolvedLabel", "Unresolved label", CategorySymbolResolution},
	CodeInvalidLabel:          {"InvalidLabel", "Invalid label", CategorySymbolResolution},
	CodeLabelAlreadyBound:     {"LabelAlreadyBound", "Label already bound", CategorySymbolResolution},
	CodeSectionNotFound:       {"SectionNotFound", "Section not found", CategorySymbolResolution},
	CodeSectionAlreadyBound:   {"SectionAlreadyBound", "Section already bound", CategorySymbolResolution},
	CodeSignatureMismatch:     {"SignatureMismatch", "Signature mismatch", CategoryStructural},
	CodeInvalidInstruction:    {"InvalidInstruction", "Invalid instruction", CategoryStructural},
	CodeOutOfBounds:           {"OutOfBounds", "Out of bounds", CategoryBounds},
	CodeImpossibleInstruction: {"ImpossibleInstruction", "Impossible instruction", CategoryStructural},
	CodeEmptyState:            {"EmptyState", "Empty state", CategoryBounds},
	CodeImpossibleRelocation:  {"ImpossibleRelocation", "Impossible relocation", CategoryStructural},
}

// Fails to compile if catalog and the code list differ in length.
var _ = [1]struct{}{}[len(catalog)-int(codeCount)]

// codesByName is the inverse of the catalog names.
var codesByName = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(catalog))
	for i := range catalog {
		m[catalog[i].name] = ErrorCode(i)
	}
	return m
}()

// info returns the catalog entry for c.
// It panics if c is not a member of the catalog; that is a programming error.
func (c ErrorCode) info() *codeInfo {
	if c >= codeCount {
		panic(fmt.Sprintf("errors: unknown error code %d", uint8(c)))
	}
	return &catalog[c]
}

// Valid reports whether c is a member of the catalog.
func (c ErrorCode) Valid() bool {
	return c < codeCount
}

// Name returns the stable symbolic name of c, such as "FileNotFound".
// Names are unqualified: there is no "ErrorCode::" prefix.
// It panics if c is not a member of the catalog.
func (c ErrorCode) Name() string {
	return c.info().name
}

// Message returns the default human-readable phrase for c.
// It panics if c is not a member of the catalog.
func (c ErrorCode) Message() string {
	return c.info().message
}

// Category returns the taxonomy group c belongs to.
// It panics if c is not a member of the catalog.
func (c ErrorCode) Category() Category {
	return c.info().category
}

// String implements fmt.Stringer. Unlike Name it does not panic on codes
// outside the catalog, so a corrupt value can still be printed.
func (c ErrorCode) String() string {
	if !c.Valid() {
		return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
	}
	return catalog[c].name
}

// MarshalText encodes c as its symbolic name.
func (c ErrorCode) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("errors: cannot marshal unknown error code %d", uint8(c))
	}
	return []byte(catalog[c].name), nil
}

// UnmarshalText decodes a symbolic name produced by MarshalText.
func (c *ErrorCode) UnmarshalText(text []byte) error {
	code, ok := ParseCode(string(text))
	if !ok {
		return fmt.Errorf("errors: unknown error code name %q", text)
	}
	*c = code
	return nil
}

// ParseCode returns the code whose symbolic name is name.
func ParseCode(name string) (ErrorCode, bool) {
	code, ok := codesByName[name]
	return code, ok
}

// Codes returns every code in the catalog in numeric order, starting with
// CodeNone. The returned slice is a copy and may be modified by the caller.
func Codes() []ErrorCode {
	out := make([]ErrorCode, codeCount)
	for i := range out {
		out[i] = ErrorCode(i)
	}
	return out
}
