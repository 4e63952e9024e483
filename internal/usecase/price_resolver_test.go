package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/usecase"
	"github.com/iho/gocredit/internal/usecase/mocks"
)

func TestPriceResolver_Resolve(t *testing.T) {
	oracle := &mocks.StaticPriceOracle{Prices: map[string]string{
		"BTC": "60000.5",
		"BAD": "sixty",
		"ZRO": "0",
	}}
	resolver := usecase.NewPriceResolver(oracle)

	tests := []struct {
		name     string
		symbol   string
		explicit *big.Int
		want     *big.Int
		wantErr  error
	}{
		{name: "explicit wins", symbol: "BTC", explicit: usd("42"), want: usd("42")},
		{name: "oracle", symbol: "BTC", want: usd("60000.5")},
		{name: "explicit must be positive", symbol: "BTC", explicit: big.NewInt(0), wantErr: domain.ErrInvalidAmount},
		{name: "missing symbol", symbol: "ETH", wantErr: domain.ErrPriceUnavailable},
		{name: "malformed oracle price", symbol: "BAD", wantErr: domain.ErrPriceUnavailable},
		{name: "zero oracle price", symbol: "ZRO", wantErr: domain.ErrPriceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(context.Background(), tt.symbol, tt.explicit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Cmp(tt.want) != 0 {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPriceResolver_ExplicitIsCopied(t *testing.T) {
	resolver := usecase.NewPriceResolver(&mocks.StaticPriceOracle{})
	explicit := usd("10")

	got, err := resolver.Resolve(context.Background(), "BTC", explicit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.SetInt64(1)

	if explicit.Cmp(usd("10")) != 0 {
		t.Fatalf("caller's price was mutated")
	}
}

func TestPriceResolver_WithoutOracle(t *testing.T) {
	resolver := usecase.NewPriceResolver(usecase.NoPriceOracle{})

	if _, err := resolver.Resolve(context.Background(), "BTC", nil); !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected ErrPriceUnavailable, got %v", err)
	}

	got, err := resolver.Resolve(context.Background(), "BTC", usd("100"))
	if err != nil || got.Cmp(usd("100")) != 0 {
		t.Fatalf("expected explicit price to be used, got %v, %v", got, err)
	}
}
