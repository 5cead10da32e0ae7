// Package text renders resolved dependency dumps as indented plain text.
//
// Every view starts with a header:
//
//	Dependency Tree for com.example:app:1.0
//	=======================================
//	(filtered to: runtime)
//
// The underline matches the title length; the annotation line appears only
// when a scope filter is set (or, for the pruned view, when all scopes are
// shown). A blank line separates the header from the body.
//
// Body lines are indented two spaces per depth level and carry the node's
// scope annotation, e.g. "org.slf4j:slf4j-api:2.0.9  [impl, compile, runtime]".
//
// Renderers write to an io.Writer and report the first write error. Callers
// that must not emit partial output render into a buffer first.
package text
