package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators: 1234567 -> "1,234,567".
func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}

// FormatThroughput renders the processing rate of count indices over d, as
// whole indices per second with thousands separators.
func FormatThroughput(count uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	return FormatThroughputRate(float64(count) / d.Seconds())
}

// FormatThroughputRate renders an already computed rate in indices per second.
func FormatThroughputRate(rate float64) string {
	return printer.Sprintf("%.0f idx/s", rate)
}

// FormatNumberString inserts thousands separators into a decimal string,
// keeping a leading minus sign.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatBytes renders a byte count with binary units: "512 B", "5.0 KB",
// "2.0 GB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTP"[exp])
}
