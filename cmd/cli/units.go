package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/iho/gocredit/internal/fixedpoint"
)

func unitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Convert between decimal strings and scaled integers",
	}

	var decimals uint

	parseCmd := &cobra.Command{
		Use:   "parse <value>",
		Short: "Scale a decimal string by 10^decimals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fixedpoint.ParseUnits(args[0], decimals)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format <raw>",
		Short: "Render a scaled integer as a decimal string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fixedpoint.ValidateDecimals(decimals); err != nil {
				return err
			}
			v, err := parseRaw(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fixedpoint.FormatUnits(v, decimals))
			return nil
		},
	}

	percentCmd := &cobra.Command{
		Use:   "percent <raw>",
		Short: "Render a scaled ratio as a truncated percentage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseRaw(args[0])
			if err != nil {
				return err
			}
			out, err := fixedpoint.FormatPercent(v, decimals)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	truncateCmd := &cobra.Command{
		Use:   "truncate <value>",
		Short: "Cut a decimal string to at most decimals fractional digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fixedpoint.TruncateDecimals(args[0], decimals)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.PersistentFlags().UintVar(&decimals, "decimals", fixedpoint.Decimals, "Number of decimals")
	cmd.AddCommand(parseCmd, formatCmd, percentCmd, truncateCmd)
	return cmd
}

func parseRaw(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", fixedpoint.ErrMalformedDecimal, s)
	}
	return v, nil
}
