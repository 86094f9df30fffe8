package contracts

import (
	"context"

	"myhealthcare-service/internal/pkg/dto/responses"
)

type SlotUsecase interface {
	AvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error)
}
