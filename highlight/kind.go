// Package highlight implements a regex-driven, incremental syntax highlighter
// meant to be embedded inside interactive text editors.
package highlight

// A Kind is a user-chosen label for a class of highlighted text, such as
// "keyword" or "string". Kinds are compared by value and are otherwise
// opaque to this package.
type Kind string
