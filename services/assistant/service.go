package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autodetail/models"
	"autodetail/services/booking"
	"autodetail/utils"

	"go.uber.org/zap"
)

// ProcessMessage drives the conversation. Mid-booking messages continue the
// flow; fresh messages are classified and dispatched by intent.
func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	state, err := s.Store.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to load context: %w", err)
	}
	if req.BusinessID != "" {
		state.BusinessID = req.BusinessID
	}

	if state.BookingStep > 0 {
		return s.handleBookingFlow(ctx, req, state)
	}

	switch DetectIntent(req.Text) {
	case IntentAvailability:
		return s.handleAvailability(ctx, req, state)
	case IntentBook:
		return s.startBookingFlow(ctx, req, state)
	default:
		return s.handleChat(ctx, req)
	}
}

// handleAvailability answers "when are you open" style questions from the
// resolver. Without a business in context the user is asked to pick one first.
func (s *DefaultAssistantService) handleAvailability(ctx context.Context, req models.AssistantRequest, state *models.AssistantContext) (*models.AssistantResponse, error) {
	if state.BusinessID == "" {
		return &models.AssistantResponse{
			Intent:       IntentAvailability,
			ResponseText: "Which business would you like to check? Open its page and ask me again.",
		}, nil
	}

	date := ExtractDate(req.Text, time.Now())
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	resolved, err := s.Availability.ResolveDate(state.BusinessID, date)
	if err != nil {
		return nil, fmt.Errorf("assistant: availability lookup failed: %w", err)
	}

	if resolved.IsClosed || len(resolved.Slots) == 0 {
		return &models.AssistantResponse{
			Intent:       IntentAvailability,
			ResponseText: fmt.Sprintf("They're closed on %s. Try another date?", date),
		}, nil
	}

	var windows []string
	for _, slot := range resolved.Slots {
		if slot.Available {
			windows = append(windows, fmt.Sprintf("%s to %s", slot.StartTime, slot.EndTime))
		}
	}
	return &models.AssistantResponse{
		Intent:       IntentAvailability,
		ResponseText: fmt.Sprintf("On %s they're open %s.", date, strings.Join(windows, ", ")),
	}, nil
}

// startBookingFlow begins the guided booking: pick a service first.
func (s *DefaultAssistantService) startBookingFlow(ctx context.Context, req models.AssistantRequest, state *models.AssistantContext) (*models.AssistantResponse, error) {
	if state.BusinessID == "" {
		return &models.AssistantResponse{
			Intent:       IntentBook,
			ResponseText: "I can book that once you pick a business. Open its page and ask me again.",
		}, nil
	}

	business, err := s.BusinessRepo.GetByID(state.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to fetch business %s: %w", state.BusinessID, err)
	}
	if business == nil {
		return nil, fmt.Errorf("assistant: business %s not found", state.BusinessID)
	}
	if len(business.Services) == 0 {
		return &models.AssistantResponse{
			Intent:       IntentBook,
			ResponseText: fmt.Sprintf("%s hasn't listed any services yet.", business.Name),
		}, nil
	}

	// The message may already name a service.
	if offering := matchService(business.Services, req.Text); offering != nil {
		state.ServiceID = offering.ID
		state.BookingStep = 2
		if err := s.Store.Set(ctx, req.UserID, state); err != nil {
			return nil, fmt.Errorf("assistant: failed to save context: %w", err)
		}
		return &models.AssistantResponse{
			Intent:       IntentBook,
			ResponseText: fmt.Sprintf("Great, %s it is. What date works for you?", offering.Name),
		}, nil
	}

	state.BookingStep = 1
	if err := s.Store.Set(ctx, req.UserID, state); err != nil {
		return nil, fmt.Errorf("assistant: failed to save context: %w", err)
	}

	var actions []models.AssistantAction
	for _, svc := range business.Services {
		actions = append(actions, models.AssistantAction{
			Label:       fmt.Sprintf("%s ($%.0f)", svc.Name, svc.Price),
			Type:        "select_service",
			BusinessID:  business.ID,
			ServiceID:   svc.ID,
			Description: svc.Description,
		})
	}
	return &models.AssistantResponse{
		Intent:       IntentBook,
		ResponseText: fmt.Sprintf("Which service at %s would you like?", business.Name),
		Actions:      actions,
	}, nil
}

// handleBookingFlow advances the guided booking one step per message:
// service, then date, then start time.
func (s *DefaultAssistantService) handleBookingFlow(ctx context.Context, req models.AssistantRequest, state *models.AssistantContext) (*models.AssistantResponse, error) {
	business, err := s.BusinessRepo.GetByID(state.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to fetch business %s: %w", state.BusinessID, err)
	}
	if business == nil {
		_ = s.Store.Clear(ctx, req.UserID)
		return nil, fmt.Errorf("assistant: business %s not found", state.BusinessID)
	}

	switch state.BookingStep {
	case 1:
		offering := matchService(business.Services, req.Text)
		if offering == nil {
			return &models.AssistantResponse{
				Intent:       IntentBook,
				ResponseText: "I didn't catch which service you meant. Could you pick one from the list?",
			}, nil
		}
		state.ServiceID = offering.ID
		state.BookingStep = 2
		if err := s.Store.Set(ctx, req.UserID, state); err != nil {
			return nil, fmt.Errorf("assistant: failed to save context: %w", err)
		}
		return &models.AssistantResponse{
			Intent:       IntentBook,
			ResponseText: fmt.Sprintf("Great, %s it is. What date works for you?", offering.Name),
		}, nil

	case 2:
		date := ExtractDate(req.Text, time.Now())
		if date == "" {
			return &models.AssistantResponse{
				Intent:       IntentBook,
				ResponseText: "Which date? Something like 2025-06-02, or just say tomorrow.",
			}, nil
		}
		offering := business.ServiceByID(state.ServiceID)
		if offering == nil {
			_ = s.Store.Clear(ctx, req.UserID)
			return nil, fmt.Errorf("assistant: service %s no longer offered", state.ServiceID)
		}

		resolved, err := s.Availability.BookableSlots(state.BusinessID, date, offering.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("assistant: slot lookup failed: %w", err)
		}

		var actions []models.AssistantAction
		for _, slot := range resolved.Slots {
			if slot.Available {
				actions = append(actions, models.AssistantAction{
					Label:      slot.StartTime,
					Type:       "select_slot",
					BusinessID: state.BusinessID,
					ServiceID:  state.ServiceID,
				})
			}
		}
		if len(actions) == 0 {
			return &models.AssistantResponse{
				Intent:       IntentBook,
				ResponseText: fmt.Sprintf("Nothing free on %s. Want to try another date?", date),
			}, nil
		}

		state.Date = date
		state.BookingStep = 3
		if err := s.Store.Set(ctx, req.UserID, state); err != nil {
			return nil, fmt.Errorf("assistant: failed to save context: %w", err)
		}
		return &models.AssistantResponse{
			Intent:       IntentBook,
			ResponseText: fmt.Sprintf("Here's what's free on %s. What time?", date),
			Actions:      actions,
		}, nil

	case 3:
		startTime := ExtractClock(req.Text)
		if startTime == "" {
			return &models.AssistantResponse{
				Intent:       IntentBook,
				ResponseText: "What time? Something like 10:00.",
			}, nil
		}

		appt, err := s.Booking.CreateAppointment(ctx, req.UserID, booking.CreateRequest{
			BusinessID: state.BusinessID,
			ServiceID:  state.ServiceID,
			Date:       state.Date,
			StartTime:  startTime,
		})
		if err != nil {
			utils.GetLogger().Warn("assistant: booking failed", zap.String("userID", req.UserID), zap.Error(err))
			return &models.AssistantResponse{
				Intent:       IntentBook,
				ResponseText: "That time didn't work out. Want to pick another slot?",
			}, nil
		}

		if err := s.Store.Clear(ctx, req.UserID); err != nil {
			utils.GetLogger().Warn("assistant: failed to clear context", zap.Error(err))
		}
		return &models.AssistantResponse{
			Intent: IntentBook,
			ResponseText: fmt.Sprintf("You're booked! %s on %s at %s. A confirmation email is on its way.",
				appt.ServiceName, appt.Date, appt.StartTime),
		}, nil

	default:
		_ = s.Store.Clear(ctx, req.UserID)
		return s.handleChat(ctx, req)
	}
}

// handleChat falls through to Gemini, with a canned reply when the model is
// unavailable.
func (s *DefaultAssistantService) handleChat(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	if s.Completer == nil {
		return &models.AssistantResponse{
			Intent:       IntentChat,
			ResponseText: "I can check availability or book a detailing service for you. What do you need?",
		}, nil
	}

	prompt := "You are a friendly assistant for a car detailing booking app. " +
		"Answer briefly and helpfully. User says: " + req.Text
	reply, err := s.Completer.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("assistant: completion failed", zap.Error(err))
		return &models.AssistantResponse{
			Intent:       IntentChat,
			ResponseText: "Sorry, I'm having trouble right now. Try again in a moment?",
		}, nil
	}
	return &models.AssistantResponse{Intent: IntentChat, ResponseText: reply}, nil
}

// matchService finds the offering whose name or ID appears in the message.
func matchService(services []models.ServiceOffering, text string) *models.ServiceOffering {
	lower := strings.ToLower(text)
	for i := range services {
		if strings.Contains(lower, strings.ToLower(services[i].Name)) || strings.Contains(lower, strings.ToLower(services[i].ID)) {
			return &services[i]
		}
	}
	return nil
}
