package rendering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formata o valor como moeda brasileira: R$ 1.234,56
func FormatCurrency(value float64) string {
	fixed := decimal.NewFromFloat(value).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	integerPart, fractionPart, _ := strings.Cut(fixed, ".")
	return fmt.Sprintf("R$ %s%s,%s", sign, groupThousands(integerPart), fractionPart)
}

// FormatInt formata inteiros com separador de milhar: 12.345
func FormatInt(value int) string {
	digits := strconv.Itoa(value)
	if value < 0 {
		return "-" + groupThousands(digits[1:])
	}
	return groupThousands(digits)
}

// FormatPercent formata uma taxa com uma casa decimal: 66.7
func FormatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	head := len(digits) % 3
	if head > 0 {
		builder.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte('.')
		}
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}
