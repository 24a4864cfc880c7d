package services

import (
	"context"

	"github.com/SscSPs/coin_converter/internal/core/domain"
)

// ConverterSvc defines the conversions of an amount of cents into bills and coins.
type ConverterSvc interface {
	// ConvertCombined splits cents into bills, then splits the rest into coins.
	ConvertCombined(ctx context.Context, cents int64) (*domain.CombinedConversion, error)

	// ConvertToCoins splits cents into coins only.
	ConvertToCoins(ctx context.Context, cents int64) (*domain.CoinConversion, error)

	// ConvertToBills splits cents into bills only and reports the cents left over.
	ConvertToBills(ctx context.Context, cents int64) (*domain.BillConversion, error)
}

// DenominationReaderSvc exposes the built-in denomination tables.
type DenominationReaderSvc interface {
	// ListDenominations returns the bill and coin tables, largest first.
	ListDenominations(ctx context.Context) (bills []domain.Denomination, coins []domain.Denomination)
}

// ConverterSvcFacade combines all converter-related service interfaces
type ConverterSvcFacade interface {
	ConverterSvc
	DenominationReaderSvc
}

// ConversionRecorder receives conversion outcomes, typically for metrics.
type ConversionRecorder interface {
	RecordConversion(kind string, pieces, remainderCents int64)
	RecordConversionError(kind string)
}
