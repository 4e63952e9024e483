package postgres

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/gocredit/internal/fixedpoint"
)

var errNonIntegerNumeric = errors.New("postgres: numeric column holds a non-integer value")

// bigToNumeric encodes v for a NUMERIC(78,0) column.
func bigToNumeric(v *big.Int) (pgtype.Numeric, error) {
	if v == nil {
		v = new(big.Int)
	}
	if err := fixedpoint.CheckInt256(v); err != nil {
		return pgtype.Numeric{}, err
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Exp: 0, Valid: true}, nil
}

// numericToBig decodes a NUMERIC(78,0) column. NULL decodes to zero.
// Postgres may return trailing zeros folded into a positive exponent.
func numericToBig(n pgtype.Numeric) (*big.Int, error) {
	if !n.Valid {
		return new(big.Int), nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil, fmt.Errorf("%w: NaN or infinity", errNonIntegerNumeric)
	}

	v := new(big.Int)
	if n.Int != nil {
		v.Set(n.Int)
	}

	switch {
	case n.Exp > 0:
		v.Mul(v, fixedpoint.Pow10(uint(n.Exp)))
	case n.Exp < 0:
		rem := new(big.Int)
		v.QuoRem(v, fixedpoint.Pow10(uint(-n.Exp)), rem)
		if rem.Sign() != 0 {
			return nil, errNonIntegerNumeric
		}
	}

	if err := fixedpoint.CheckInt256(v); err != nil {
		return nil, err
	}
	return v, nil
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// numericDecoder collects the first decoding error so row mappers can decode
// many columns without checking each one.
type numericDecoder struct {
	err error
}

func (d *numericDecoder) decode(n pgtype.Numeric) *big.Int {
	v, err := numericToBig(n)
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return new(big.Int)
	}
	return v
}
