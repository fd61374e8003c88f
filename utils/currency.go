// utils/currency.go
package utils

import (
	"strconv"
	"strings"
)

// EGPOptions controls currency formatting. The zero value means two
// decimal places with the symbol appended.
type EGPOptions struct {
	Decimals         int
	OmitSymbol       bool
	TrimZeroDecimals bool
}

// EGPSymbol is the Egyptian Pound symbol appended to formatted amounts.
const EGPSymbol = "ج.م"

// FormatEGP formats an amount as Egyptian Pounds, e.g. "45.00 ج.م".
func FormatEGP(value float64, opts EGPOptions) string {
	decimals := opts.Decimals
	if decimals <= 0 {
		decimals = 2
	}

	formatted := strconv.FormatFloat(value, 'f', decimals, 64)

	if opts.TrimZeroDecimals && strings.HasSuffix(formatted, ".00") {
		formatted = strings.TrimSuffix(formatted, ".00")
	}

	if !opts.OmitSymbol {
		formatted = formatted + " " + EGPSymbol
	}

	return formatted
}
