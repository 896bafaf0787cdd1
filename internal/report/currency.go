package report

import (
	"fmt"
	"math"
	"strconv"
)

const (
	crore = 1e7
	lakh  = 1e5
)

// FormatINR renders an amount in the Indian numbering convention: Crores from
// 1 Cr up, Lakhs from 1 Lakh up, plain comma-grouped rupees below that.
// Negative amounts keep their sign and bucket by magnitude, so an overpaid
// group still renders readably.
func FormatINR(amount float64) string {
	sign := ""
	abs := amount
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	switch {
	case abs >= crore:
		return fmt.Sprintf("%s₹%.2f Cr", sign, abs/crore)
	case abs >= lakh:
		return fmt.Sprintf("%s₹%.2f Lakh", sign, abs/lakh)
	default:
		return sign + "₹" + groupThousands(int64(math.Round(abs)))
	}
}

func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
