package get_multi_provider_slots

import (
	"context"

	getMultiProviderSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_multi_provider_slots"
)

type GetMultiProviderSlotsUseCase interface {
	Execute(ctx context.Context, req *getMultiProviderSlots.Request) (*getMultiProviderSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
