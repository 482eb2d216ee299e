// Package types defines the core contracts shared across modulify.
// This includes the Module interface every registered unit implements,
// the Document payload, and the text and binary document module
// capabilities the dispatch protocol resolves against.
package types
