// Package catalog holds named items of one kind, such as codec
// factories. Packages add their entries from init() functions and
// consumers look them up by name; lookup failures name the kind and list
// what is available.
package catalog
