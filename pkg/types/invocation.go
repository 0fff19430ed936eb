package types

// StdioPath is the path value meaning standard input or standard output.
const StdioPath = "-"

// Invocation is the fully resolved command line of one run.
type Invocation struct {
	EntryPath     string
	TemplatesRoot string
	// ContextPath is empty or StdioPath for standard input.
	ContextPath string
	// Format is FormatUnknown unless given explicitly.
	Format       Format
	UseEnv       bool
	NoAutoEscape bool
	// OutputPath is empty or StdioPath for standard output.
	OutputPath string
	Overwrite  bool
	Extensions []string
}

// ReadsStdin reports whether the context comes from standard input.
func (inv Invocation) ReadsStdin() bool {
	return !inv.UseEnv && IsStdio(inv.ContextPath)
}

// WritesStdout reports whether the rendered output goes to standard output.
func (inv Invocation) WritesStdout() bool {
	return IsStdio(inv.OutputPath)
}

// IsStdio reports whether path selects a standard stream.
func IsStdio(path string) bool {
	return path == "" || path == StdioPath
}
