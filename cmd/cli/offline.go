package main

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gocredit/internal/domain"
	"github.com/iho/gocredit/internal/fixedpoint"
	"github.com/iho/gocredit/internal/risk"
)

// fiat renders a value scaled by 10^18 for humans.
func fiat(v *big.Int) string {
	return decimal.NewFromBigInt(v, -fixedpoint.Decimals).String()
}

func parseFiatFlag(name, value string) (*big.Int, error) {
	v, err := fixedpoint.ParseUnits(value, fixedpoint.Decimals)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return v, nil
}

func projectCmd() *cobra.Command {
	var (
		deposit, price, strategy             string
		collateralFactor, fiatFee, cryptoFee string
		collateralDecimals                   uint
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a credit line before opening it",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &domain.EconomicalParameters{}
			for _, f := range []struct {
				name  string
				value string
				dst   **big.Int
			}{
				{"collateral-factor", collateralFactor, &params.CollateralFactor},
				{"fiat-fee", fiatFee, &params.FiatProcessingFee},
				{"crypto-fee", cryptoFee, &params.CryptoProcessingFee},
			} {
				v, err := parseFiatFlag(f.name, f.value)
				if err != nil {
					return err
				}
				*f.dst = v
			}

			unitPrice, err := parseFiatFlag("price", price)
			if err != nil {
				return err
			}
			raw, err := fixedpoint.ParseUnits(deposit, collateralDecimals)
			if err != nil {
				return fmt.Errorf("--deposit: %w", err)
			}

			s, err := domain.ParseRiskStrategy(strategy)
			if err != nil {
				return err
			}
			rate, err := s.Rate(params)
			if err != nil {
				return err
			}

			p := risk.ProjectOpenCreditLine(params, collateralDecimals, raw, unitPrice, rate)
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"supply_usd":                fiat(p.SupplyUSD),
				"borrow_usd":                fiat(p.BorrowUSD),
				"collateral_amount_usd":     fiat(p.CollateralAmountUSD),
				"collateral_limit_price":    fiat(p.CollateralLimitPrice),
				"supply_processing_fee_usd": fiat(p.SupplyProcFeeUSD),
				"borrow_processing_fee_usd": fiat(p.BorrowProcFeeUSD),
				"total_processing_fee_usd":  fiat(p.TotalProcFeeUSD),
			})
		},
	}

	cmd.Flags().StringVar(&deposit, "deposit", "", "Collateral deposit in token units")
	cmd.Flags().UintVar(&collateralDecimals, "collateral-decimals", 8, "Decimals of the collateral token")
	cmd.Flags().StringVar(&price, "price", "", "Collateral price in fiat")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.RiskStrategyMedium), "Risk strategy: LOW, MEDIUM or HIGH")
	cmd.Flags().StringVar(&collateralFactor, "collateral-factor", "0.5", "Collateral factor")
	cmd.Flags().StringVar(&fiatFee, "fiat-fee", "0", "Fiat processing fee rate")
	cmd.Flags().StringVar(&cryptoFee, "crypto-fee", "0", "Crypto processing fee rate")
	_ = cmd.MarkFlagRequired("deposit")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func interestCmd() *cobra.Command {
	var (
		debt, apr string
		hours     uint64
	)

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Compute the interest accrued on a debt",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseFiatFlag("debt", debt)
			if err != nil {
				return err
			}
			rate, err := parseFiatFlag("apr", apr)
			if err != nil {
				return err
			}

			interest := risk.CalculateInterestAccrued(d, rate, hours)
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"hours":        hours,
				"interest":     fiat(interest),
				"interest_raw": interest.String(),
				"new_debt":     fiat(new(big.Int).Add(d, interest)),
			})
		},
	}

	cmd.Flags().StringVar(&debt, "debt", "", "Debt in fiat")
	cmd.Flags().StringVar(&apr, "apr", "", "Annual rate, 0.12 for 12%")
	cmd.Flags().Uint64Var(&hours, "hours", 1, "Whole hours elapsed")
	_ = cmd.MarkFlagRequired("debt")
	_ = cmd.MarkFlagRequired("apr")

	return cmd
}
