package models

// AssistantRequest is the payload coming from the frontend into /api/assistant/chat.
type AssistantRequest struct {
	UserID     string `json:"userId"`
	Text       string `json:"text"`
	BusinessID string `json:"businessId,omitempty"` // set when chatting from a business page
}

// AssistantAction is a single button/card action returned during booking steps.
type AssistantAction struct {
	Label       string `json:"label"`
	Type        string `json:"type"` // e.g. "book", "select_service", "select_slot", "chat"
	BusinessID  string `json:"businessId,omitempty"`
	ServiceID   string `json:"serviceId,omitempty"`
	Description string `json:"description,omitempty"`
}

// AssistantResponse is what the chat handler returns to the frontend.
type AssistantResponse struct {
	Intent       string            `json:"intent"` // "chat", "availability" or "book"
	ResponseText string            `json:"response"`
	Actions      []AssistantAction `json:"actions,omitempty"`
}

// AssistantContext is the per-user conversation state held in Redis.
type AssistantContext struct {
	BusinessID  string `json:"businessId,omitempty"`
	ServiceID   string `json:"serviceId,omitempty"`
	Date        string `json:"date,omitempty"`
	BookingStep int    `json:"bookingStep"`
}
