// Package types defines the records shared by every stage of a render:
// the Template record, the Invocation record built from the command line,
// the context Format enum and the dynamic context Value.
package types
