package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/coin_converter/internal/apperrors"
	"github.com/SscSPs/coin_converter/internal/core/domain"
	portssvc "github.com/SscSPs/coin_converter/internal/core/ports/services"
)

// converterService implements the ConverterSvcFacade interface
type converterService struct {
	BaseService
	bills    []domain.Denomination
	coins    []domain.Denomination
	recorder portssvc.ConversionRecorder
}

// ConverterServiceOption is a functional option for configuring the converter service
type ConverterServiceOption func(*converterService)

// WithConversionRecorder adds a recorder that is told about every conversion.
func WithConversionRecorder(recorder portssvc.ConversionRecorder) ConverterServiceOption {
	return func(s *converterService) {
		s.recorder = recorder
	}
}

// NewConverterService creates a new converter service with the provided options
func NewConverterService(options ...ConverterServiceOption) portssvc.ConverterSvcFacade {
	svc := &converterService{
		bills: domain.BillDenominations(),
		coins: domain.CoinDenominations(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// ConvertCombined runs the bill pass, then the coin pass over what the bills left.
// The smallest coin is one cent, so the coin remainder is always zero and is dropped.
func (s *converterService) ConvertCombined(ctx context.Context, cents int64) (*domain.CombinedConversion, error) {
	kind := domain.ConversionCombined
	if err := s.checkRequest(ctx, kind, cents); err != nil {
		return nil, err
	}

	bills, err := domain.BreakDown(cents, s.bills)
	if err != nil {
		return nil, s.fail(ctx, kind, cents, err)
	}
	coins, err := domain.BreakDown(bills.Remainder, s.coins)
	if err != nil {
		return nil, s.fail(ctx, kind, cents, err)
	}

	conversion := &domain.CombinedConversion{
		AmountCents: cents,
		Bills:       bills,
		Coins:       coins,
	}

	s.record(kind, conversion.Pieces(), 0)
	s.LogDebug(ctx, "Converted currency to bills and coins",
		slog.Int64("cents", cents),
		slog.Int64("bill_pieces", bills.Pieces()),
		slog.Int64("coin_pieces", coins.Pieces()))
	return conversion, nil
}

// ConvertToCoins runs the coin pass alone.
func (s *converterService) ConvertToCoins(ctx context.Context, cents int64) (*domain.CoinConversion, error) {
	kind := domain.ConversionCoins
	if err := s.checkRequest(ctx, kind, cents); err != nil {
		return nil, err
	}

	coins, err := domain.BreakDown(cents, s.coins)
	if err != nil {
		return nil, s.fail(ctx, kind, cents, err)
	}

	s.record(kind, coins.Pieces(), 0)
	s.LogDebug(ctx, "Converted currency to coins",
		slog.Int64("cents", cents),
		slog.Int64("coin_pieces", coins.Pieces()))
	return &domain.CoinConversion{AmountCents: cents, Coins: coins}, nil
}

// ConvertToBills runs the bill pass alone. Unlike the other conversions the
// remainder is part of the result, since bills cannot express less than a dollar.
func (s *converterService) ConvertToBills(ctx context.Context, cents int64) (*domain.BillConversion, error) {
	kind := domain.ConversionBills
	if err := s.checkRequest(ctx, kind, cents); err != nil {
		return nil, err
	}

	bills, err := domain.BreakDown(cents, s.bills)
	if err != nil {
		return nil, s.fail(ctx, kind, cents, err)
	}

	s.record(kind, bills.Pieces(), bills.Remainder)
	s.LogDebug(ctx, "Converted currency to bills",
		slog.Int64("cents", cents),
		slog.Int64("bill_pieces", bills.Pieces()),
		slog.Int64("remainder_cents", bills.Remainder))
	return &domain.BillConversion{
		AmountCents:    cents,
		Bills:          bills,
		RemainderCents: bills.Remainder,
	}, nil
}

// ListDenominations returns copies of the bill and coin tables.
func (s *converterService) ListDenominations(ctx context.Context) ([]domain.Denomination, []domain.Denomination) {
	return domain.BillDenominations(), domain.CoinDenominations()
}

// checkRequest rejects cancelled requests and negative amounts before any work is done.
func (s *converterService) checkRequest(ctx context.Context, kind domain.ConversionKind, cents int64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("conversion %s aborted: %w", kind, err)
	}
	if cents < 0 {
		err := fmt.Errorf("%w: cents must be non-negative, got %d", apperrors.ErrInvalidArgument, cents)
		return s.fail(ctx, kind, cents, err)
	}
	return nil
}

func (s *converterService) fail(ctx context.Context, kind domain.ConversionKind, cents int64, err error) error {
	if s.recorder != nil {
		s.recorder.RecordConversionError(string(kind))
	}
	if errors.Is(err, apperrors.ErrInvalidArgument) {
		s.LogWarn(ctx, err, "Rejected conversion", slog.String("kind", string(kind)), slog.Int64("cents", cents))
	} else {
		s.LogError(ctx, err, "Conversion failed", slog.String("kind", string(kind)), slog.Int64("cents", cents))
	}
	return fmt.Errorf("failed to convert %d cents (%s): %w", cents, kind, err)
}

func (s *converterService) record(kind domain.ConversionKind, pieces, remainderCents int64) {
	if s.recorder != nil {
		s.recorder.RecordConversion(string(kind), pieces, remainderCents)
	}
}
