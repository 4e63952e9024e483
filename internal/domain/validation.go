package domain

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/iho/gocredit/internal/fixedpoint"
)

// Validation errors
var (
	ErrInvalidIDFormat     = errors.New("invalid ID format")
	ErrInvalidSymbol       = errors.New("invalid currency symbol")
	ErrAmountTooLarge      = errors.New("amount exceeds maximum allowed")
	ErrInvalidRiskStrategy = errors.New("invalid risk strategy")
	ErrInvalidSolvencyMode = errors.New("invalid solvency mode")
)

// Validation constants
const (
	MaxIDLength     = 64
	MaxSymbolLength = 16
)

var (
	idRegex     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	symbolRegex = regexp.MustCompile(`^[A-Z0-9]+$`)
)

// ValidateID validates an entity identifier
func ValidateID(id string) error {
	if id == "" || len(id) > MaxIDLength || !idRegex.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIDFormat, id)
	}
	return nil
}

// NormalizeSymbol upper-cases and validates a currency symbol
func NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || len(symbol) > MaxSymbolLength || !symbolRegex.MatchString(symbol) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return symbol, nil
}

// ValidateAmount validates a borrow/repay/deposit/withdraw amount
func ValidateAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	if !fixedpoint.FitsInt256(amount) {
		return fmt.Errorf("%w: amount does not fit 256 bits", ErrAmountTooLarge)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
