package postback

import "strings"

const (
	// LabelCredit marks a credited task in the outbound message.
	LabelCredit = "CREDIT"
	// LabelChargeback marks a reversed task in the outbound message.
	LabelChargeback = "CHARGEBACK"
)

// platformPrefixes are user id prefixes the rewards platform adds per chat platform.
var platformPrefixes = []string{"telegram_", "discord_"}

// HasPlatformPrefix reports whether userID carries a known platform prefix.
func HasPlatformPrefix(userID string) bool {
	for _, p := range platformPrefixes {
		if strings.HasPrefix(userID, p) {
			return true
		}
	}
	return false
}

// CleanUserID strips the platform prefix from userID. Ids without a prefix
// are assumed to already belong to this channel and are returned unchanged.
func CleanUserID(userID string) string {
	for _, p := range platformPrefixes {
		if strings.HasPrefix(userID, p) {
			return strings.TrimPrefix(userID, p)
		}
	}
	return userID
}

// Label returns the message label for the event type.
func (e Event) Label() string {
	if e.IsChargeback() {
		return LabelChargeback
	}
	return LabelCredit
}

// Message builds the text relayed to the chat group, e.g. "CREDIT:99:1.25".
func (e Event) Message() string {
	return FormatMessage(e.Label(), CleanUserID(e.UserID), FormatDecimal(e.CurrencyAmount))
}

// FormatMessage joins the message parts with colons.
func FormatMessage(label, userID, amount string) string {
	return label + ":" + userID + ":" + amount
}
