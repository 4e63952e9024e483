package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iho/gocredit/internal/adapter/http/dto"
)

type apiClient struct {
	http    *http.Client
	baseURL string
}

func newAPIClient(opts *options) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(opts.baseURL, "/"),
		http:    &http.Client{Timeout: opts.timeout},
	}
}

// do sends the request and returns the body. A non-2xx status is returned as
// an error carrying the API's error message.
func (c *apiClient) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return data, fmt.Errorf("API returned %d: %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
			}
			return data, fmt.Errorf("API returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return data, fmt.Errorf("API returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	return data, nil
}

func riskCmd(opts *options) *cobra.Command {
	var price string

	cmd := &cobra.Command{
		Use:   "risk <credit-line-id>",
		Short: "Show the risk overview of a credit line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/credit-lines/" + url.PathEscape(args[0]) + "/risk"
			if price != "" {
				path += "?price=" + url.QueryEscape(price)
			}

			data, err := newAPIClient(opts).do(cmd.Context(), http.MethodGet, path, nil)
			if err != nil {
				return err
			}

			var overview dto.RiskOverviewResponse
			if err := json.Unmarshal(data, &overview); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), overview)
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Collateral price override in fiat")
	return cmd
}

func sweepCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run an accrual sweep over all open credit lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := newAPIClient(opts).do(cmd.Context(), http.MethodPost, "/api/v1/accrual/sweep", bytes.NewReader(nil))
			var report dto.SweepResponse
			if len(data) > 0 && json.Unmarshal(data, &report) == nil && report.RunID != "" {
				if perr := printJSON(cmd.OutOrStdout(), report); perr != nil {
					return perr
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Sweep %s: %d processed, %d accrued, %d skipped, %d failed\n",
				report.RunID, report.Processed, report.Accrued, report.Skipped, report.Failed)
			if report.Failed > 0 {
				return fmt.Errorf("%d credit lines failed to accrue", report.Failed)
			}
			return nil
		},
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
