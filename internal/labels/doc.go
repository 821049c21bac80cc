// Package labels reads label files: comma-delimited UTF-8 text pairing an
// image filename with its transcription, one record per row.
package labels
