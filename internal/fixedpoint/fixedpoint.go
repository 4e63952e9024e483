// Package fixedpoint converts between decimal strings and integers scaled by
// a power of ten. Every monetary value in the service is a *big.Int scaled by
// ExpScale (10^18); token amounts use the token's native decimals instead.
package fixedpoint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Decimals is the scale of every fiat amount, price and percentage.
	Decimals = 18

	// MaxDecimals bounds the decimals argument accepted anywhere in the package.
	MaxDecimals = 256
)

var (
	ErrMalformedDecimal        = errors.New("fixedpoint: malformed decimal")
	ErrExceedsDecimals         = errors.New("fixedpoint: fractional component exceeds decimals")
	ErrIncorrectDecimalsConfig = errors.New("fixedpoint: incorrect decimals config")
)

var pow10Table = func() [MaxDecimals + 1]*big.Int {
	var table [MaxDecimals + 1]*big.Int
	ten := big.NewInt(10)
	table[0] = big.NewInt(1)
	for i := 1; i <= MaxDecimals; i++ {
		table[i] = new(big.Int).Mul(table[i-1], ten)
	}
	return table
}()

// ValidateDecimals returns ErrIncorrectDecimalsConfig when decimals is outside [0, MaxDecimals].
func ValidateDecimals(decimals uint) error {
	if decimals > MaxDecimals {
		return fmt.Errorf("%w: %d", ErrIncorrectDecimalsConfig, decimals)
	}
	return nil
}

// Pow10 returns 10^decimals. It panics on decimals outside [0, MaxDecimals]:
// such a value can only come from corrupted configuration.
func Pow10(decimals uint) *big.Int {
	if err := ValidateDecimals(decimals); err != nil {
		panic(err)
	}
	return new(big.Int).Set(pow10Table[decimals])
}

// ExpScale returns 10^18.
func ExpScale() *big.Int {
	return Pow10(Decimals)
}

// ParseUnits parses a decimal string into an integer scaled by 10^decimals.
//
// An optional leading "-" is accepted. Trailing zeros of the fraction are
// trimmed before it is checked against decimals, so "1.500" parses with
// decimals=2.
func ParseUnits(value string, decimals uint) (*big.Int, error) {
	if err := ValidateDecimals(decimals); err != nil {
		return nil, err
	}

	input := value
	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}

	if value == "" || value == "." {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDecimal, input)
	}

	parts := strings.Split(value, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: too many decimal points in %q", ErrMalformedDecimal, input)
	}

	whole := parts[0]
	fraction := ""
	if len(parts) == 2 {
		fraction = parts[1]
	}

	if !isDigits(whole) || !isDigits(fraction) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDecimal, input)
	}

	fraction = strings.TrimRight(fraction, "0")
	if uint(len(fraction)) > decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrExceedsDecimals, input, decimals)
	}

	if whole == "" {
		whole = "0"
	}
	fraction += strings.Repeat("0", int(decimals)-len(fraction))

	// whole*10^decimals + fraction is the concatenation once fraction is padded.
	result, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDecimal, input)
	}

	if negative {
		result.Neg(result)
	}

	return result, nil
}

// MustParseUnits is like ParseUnits but panics on error. Use it for constants.
func MustParseUnits(value string, decimals uint) *big.Int {
	v, err := ParseUnits(value, decimals)
	if err != nil {
		panic(err)
	}
	return v
}

// FormatUnits renders value, scaled by 10^decimals, as a decimal string.
// The fraction keeps at least one digit ("1.0"); no point is emitted when
// decimals is zero.
func FormatUnits(value *big.Int, decimals uint) string {
	multiplier := Pow10(decimals)
	if value == nil {
		value = new(big.Int)
	}

	abs := new(big.Int).Abs(value)
	whole, remainder := new(big.Int).QuoRem(abs, multiplier, new(big.Int))

	var out string
	if decimals == 0 {
		out = whole.String()
	} else {
		fraction := remainder.String()
		fraction = strings.Repeat("0", int(decimals)-len(fraction)) + fraction
		fraction = strings.TrimRight(fraction, "0")
		if fraction == "" {
			fraction = "0"
		}
		out = whole.String() + "." + fraction
	}

	if value.Sign() < 0 {
		return "-" + out
	}
	return out
}

// FormatPercent renders a ratio scaled by 10^decimals as a percentage with at
// most two fractional digits. Extra digits are truncated, never rounded, and
// an all-zero fraction is dropped: 0.12349 becomes "12.34", 0.5 becomes "50".
func FormatPercent(value *big.Int, decimals uint) (string, error) {
	if err := ValidateDecimals(decimals); err != nil {
		return "", err
	}
	if decimals < 2 {
		return "", fmt.Errorf("%w: percent formatting needs at least 2 decimals, got %d", ErrIncorrectDecimalsConfig, decimals)
	}
	if value == nil {
		value = new(big.Int)
	}

	formatted := FormatUnits(new(big.Int).Abs(value), decimals-2)
	whole, fraction, _ := strings.Cut(formatted, ".")
	if len(fraction) > 2 {
		fraction = fraction[:2]
	}

	out := whole
	if strings.Trim(fraction, "0") != "" {
		out = whole + "." + fraction
	}

	if value.Sign() < 0 && out != "0" {
		return "-" + out, nil
	}
	return out, nil
}

// TruncateDecimals cuts a decimal string to at most decimals fractional digits
// without rounding. When nothing but zeros survives the cut, only the integer
// part is returned.
func TruncateDecimals(value string, decimals uint) (string, error) {
	input := value
	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}

	whole, fraction, found := strings.Cut(value, ".")
	if (whole == "" && fraction == "") || (found && strings.Contains(fraction, ".")) || !isDigits(whole) || !isDigits(fraction) {
		return "", fmt.Errorf("%w: %q", ErrMalformedDecimal, input)
	}

	if whole == "" {
		whole = "0"
	}
	if uint(len(fraction)) > decimals {
		fraction = fraction[:decimals]
	}
	fraction = strings.TrimRight(fraction, "0")

	out := whole
	if fraction != "" {
		out = whole + "." + fraction
	}

	if negative && strings.Trim(out, "0.") != "" {
		return "-" + out, nil
	}
	return out, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
