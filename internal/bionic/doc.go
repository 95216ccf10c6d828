// Package bionic implements the bionic reading emphasis transform.
//
// Transform splits text into whitespace-delimited words and marks the leading
// half of every word (rounded up, counted in grapheme clusters) for emphasis.
// A disabled transform is a complete bypass that returns the original text
// untouched. Renderer turns the resulting segments into terminal, markdown,
// HTML, plain, or JSON output, and TransformAll fans a batch of documents out
// across goroutines while preserving input order.
package bionic
