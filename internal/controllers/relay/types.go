package relay

// HealthResponse reports the relay's readiness.
type HealthResponse struct {
	// Status is "ok" while the bot is connected and "degraded" otherwise.
	Status string `json:"status"`
	// Telegram is the bot connection state, "connected" or "disconnected".
	Telegram string `json:"telegram"`
	// BotUsername is the bot account confirmed by the identity check.
	BotUsername string `json:"botUsername,omitempty"`
	// SecretConfigured tells whether postback signatures can be verified.
	SecretConfigured bool `json:"secretConfigured"`
	// GroupID is the chat that receives forwarded postbacks.
	GroupID string `json:"groupId"`
	// Port is the HTTP port the relay listens on.
	Port int `json:"port"`
}
