package assistant

import (
	"context"

	businessRepo "autodetail/database/repository/business"
	"autodetail/models"
	"autodetail/services/availability"
	"autodetail/services/booking"
)

// AssistantService handles one chat message and returns the reply plus any
// follow-up actions for the frontend to render.
type AssistantService interface {
	ProcessMessage(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error)
}

// DefaultAssistantService is the production implementation. Availability and
// booking questions are answered from the scheduling services; everything
// else falls through to the Gemini completer.
type DefaultAssistantService struct {
	Store        ContextStore
	Completer    Completer
	BusinessRepo businessRepo.BusinessRepository
	Availability availability.AvailabilityService
	Booking      booking.BookingService
}

var _ AssistantService = (*DefaultAssistantService)(nil)
