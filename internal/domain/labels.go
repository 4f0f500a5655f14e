// Package domain holds the dump parsing pipeline, the diff engine and the
// SCC analysis algorithms, plus the workflow that drives them.
package domain

import (
	"path/filepath"
	"strings"
)

// fileLabel derives the short label identifying a dump in reports: the base
// file name with its extension stripped and the conventional "debug_" prefix
// removed, so "out/debug_master.txt" becomes "master".
func fileLabel(path string) string {
	stem := filepath.Base(path)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))

	return strings.TrimPrefix(stem, "debug_")
}

// sectionLabel prefers a section's own annotation over the file label. Empty
// and whitespace-only annotations fall back to the file label.
func sectionLabel(fileLabel, desc string) string {
	if d := strings.TrimSpace(desc); d != "" {
		return d
	}

	return fileLabel
}
