// Package registry stores modules and resolves them by capability.
//
// Modules are accumulated in a mutable Collection together with the set
// of capability types (usually interface types) they should be classified
// against. Build compiles a Collection into an immutable ModuleProvider:
// every module is filed under each declared capability it satisfies, in
// registration order, and modules matching no declared capability are kept
// aside and checked by runtime assignability at query time.
//
// Single-result lookups return the last matching module, so later
// registrations take precedence over earlier ones. A built provider never
// changes, which makes it safe to share between goroutines.
package registry
