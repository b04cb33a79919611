package currency

import "fmt"

// FormatCents renders an integer minor-unit amount for display,
// e.g. FormatCents(58000, "USD") -> "USD $580.00".
func FormatCents(cents int, code string) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	result := fmt.Sprintf("%s $%d.%02d", code, cents/100, cents%100)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPoints renders a points amount with thousands separators,
// e.g. 37500 -> "37,500".
func FormatPoints(points int) string {
	negative := points < 0
	if negative {
		points = -points
	}

	s := fmt.Sprintf("%d", points)
	formatted := addThousandsSeparator(s, ",")
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatPointsValue renders a cents-per-point rate, e.g. "1.30¢ per point".
func FormatPointsValue(centsPerPoint float64) string {
	return fmt.Sprintf("%.2f¢ per point", centsPerPoint)
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
