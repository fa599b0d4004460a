package errors

// Category groups error codes by the kind of failure they describe.
// It lets callers react to a family of failures without listing every code.
type Category string

const (
	// CategoryNone is the category of CodeNone.
	CategoryNone Category = "none"

	// CategoryValidity covers invalid modes, parameters and uninitialized state.
	CategoryValidity Category = "validity"

	// CategoryResourceAccess covers missing or inaccessible resources.
	CategoryResourceAccess Category = "resource_access"

	// CategoryResourceExhaustion covers allocation failures.
	CategoryResourceExhaustion Category = "resource_exhaustion"

	// CategorySymbolResolution covers unresolved or duplicate labels and sections.
	CategorySymbolResolution Category = "symbol_resolution"

	// CategoryStructural covers signature mismatches and impossible
	// instructions or relocations.
	CategoryStructural Category = "structural"

	// CategoryBounds covers out-of-range access and empty state.
	CategoryBounds Category = "bounds"
)

// IsSymbolic returns true for failures caused by label or section bookkeeping.
// These usually point at the program being assembled rather than the assembler.
func (c Category) IsSymbolic() bool {
	return c == CategorySymbolResolution
}

// GetCategory extracts the Category from an error.
// Returns CategoryNone if err is nil or carries no error code.
//
// Example:
//
//	if errors.GetCategory(err) == errors.CategoryResourceAccess {
//	    // Report the path to the user
//	}
func GetCategory(err error) Category {
	return GetCode(err).Category()
}
