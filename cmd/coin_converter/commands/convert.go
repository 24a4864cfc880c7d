package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/coin_converter/internal/core/domain"
	"github.com/SscSPs/coin_converter/internal/core/services"
	"github.com/SscSPs/coin_converter/internal/dto"
	"github.com/SscSPs/coin_converter/internal/utils"
	"github.com/spf13/cobra"
)

func convertCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "convert <cents>",
		Short: "Print the breakdown of an amount of cents as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.ConversionKind(strings.ToLower(mode))
			if !kind.IsValid() {
				return fmt.Errorf("unknown mode %q: want combined, coins or bills", mode)
			}
			cents, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || cents < 1 {
				return fmt.Errorf("cents must be an integer greater than or equal to 1, got %q", args[0])
			}

			body, err := convert(cmd, kind, cents)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Amount: %s\n", utils.FormatCents(cents))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(body)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.ConversionCombined), "conversion mode: combined, coins or bills")
	return cmd
}

func convert(cmd *cobra.Command, kind domain.ConversionKind, cents int64) (any, error) {
	svc := services.NewConverterService()
	ctx := cmd.Context()

	switch kind {
	case domain.ConversionCoins:
		c, err := svc.ConvertToCoins(ctx, cents)
		if err != nil {
			return nil, err
		}
		return dto.ToCurrencyCoinsResponse(c), nil
	case domain.ConversionBills:
		c, err := svc.ConvertToBills(ctx, cents)
		if err != nil {
			return nil, err
		}
		return dto.ToCurrencyBillsResponse(c), nil
	default:
		c, err := svc.ConvertCombined(ctx, cents)
		if err != nil {
			return nil, err
		}
		return dto.ToCurrencyBillsAndCoinsResponse(c), nil
	}
}
