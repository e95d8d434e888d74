package format

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes renders a byte count as a human-readable string with two decimal
// places, e.g. 1536 -> "1.50 KB". Values are divided by 1024 until they
// drop below 1024 or the TB unit is reached.
func Bytes(n float64) string {
	unit := 0
	for n >= 1024 && unit < len(byteUnits)-1 {
		n /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", n, byteUnits[unit])
}
