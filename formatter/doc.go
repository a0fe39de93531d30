// Package formatter serializes cleaned documents.
//
// Output is compact JSON unless an indent is configured. Encoding is
// deterministic: the same document always produces the same bytes, which
// keeps repeated converter runs byte-identical.
package formatter
