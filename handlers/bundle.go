package handlers

import (
	userRepoPkg "autodetail/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration. UserRepo is exposed for the auth middleware.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User         *UserHandler
	Webhook      *WebhookHandler
	Business     *BusinessHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Vehicle      *VehicleHandler
	Assistant    *AssistantHandler
}
