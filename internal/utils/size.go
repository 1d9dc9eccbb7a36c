// Package utils contains general helper functions used across the toolbelt.
package utils

import "fmt"

// sizeUnits lists the 1024-based units used for display formatting.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte length into a human-readable 1024-based unit string.
func FormatSize(sizeBytes int64) string {
	if sizeBytes <= 0 {
		return "0 B"
	}
	value := float64(sizeBytes)
	unitIndex := 0
	for value >= 1024 && unitIndex < len(sizeUnits)-1 {
		value /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unitIndex])
}
