package services

import (
	portssvc "github.com/SscSPs/coin_converter/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// recorder may be nil when metrics are disabled.
func NewServiceContainer(recorder portssvc.ConversionRecorder) *portssvc.ServiceContainer {
	var opts []ConverterServiceOption
	if recorder != nil {
		opts = append(opts, WithConversionRecorder(recorder))
	}

	return &portssvc.ServiceContainer{
		Converter: NewConverterService(opts...),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.ConverterSvcFacade = (*converterService)(nil)
