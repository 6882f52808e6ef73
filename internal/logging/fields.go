package logging

// Field name constants for structured logging. Using constants prevents
// typos and keeps field names consistent across commands.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"

	// Build fields.
	FieldLength     = "length"
	FieldTerminator = "terminator"
	FieldAlphabet   = "alphabet"

	// Tree shape fields.
	FieldNodes    = "nodes"
	FieldLeaves   = "leaves"
	FieldInternal = "internal"
	FieldDepth    = "depth"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
