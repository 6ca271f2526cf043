package model

import "fmt"

// FormatSize renders a byte count for the attachment list (e.g. "3.2 KB").
// Sizes the backend would reject anyway still format fine; no validation here.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
