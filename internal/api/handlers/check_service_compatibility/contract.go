package check_service_compatibility

import (
	"context"

	checkCompatibility "github.com/m04kA/SMC-BarberBookingService/internal/usecase/check_service_compatibility"
)

type CheckCompatibilityUseCase interface {
	Execute(ctx context.Context, req *checkCompatibility.Request) (*checkCompatibility.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
