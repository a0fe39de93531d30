// Package document reads raw scrape snapshots and writes cleaned documents.
//
// Both sides share the container shape {"Items": [...]}. Source items are
// kept weakly typed as protobuf Struct values so that an absent field can be
// told apart from a field holding JSON null. Destination items keep their
// keys in insertion order, which is the order of the converter's mapping
// table followed by any derived fields.
//
// Writes go through a temp file in the destination directory followed by a
// rename, so a failed write never leaves a truncated document behind.
package document
