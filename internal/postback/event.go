package postback

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TypeChargeback is the postback type that reverses a previous credit.
const TypeChargeback = "chargeback"

// Query parameter names sent by the rewards platform.
var (
	userIDKeys        = []string{"userid", "userID", "userId"}
	transactionIDKeys = []string{"transactionid", "transactionID", "transactionId"}
)

const (
	revenueKey        = "revenue"
	hashKey           = "hash"
	typeKey           = "type"
	currencyAmountKey = "currencyAmount"
)

// Event is a single postback notification. It only lives for the request that carried it.
type Event struct {
	// UserID is the raw user identifier, possibly carrying a platform prefix.
	UserID string
	// Revenue is the revenue in USD the signature is computed over.
	Revenue decimal.Decimal
	// TransactionID is the platform's opaque transaction reference.
	TransactionID string
	// Signature is the hash received with the postback.
	Signature string
	// Type is "chargeback" for reversals; any other value is treated as a credit.
	Type string
	// CurrencyAmount is the USD amount reported to the chat group.
	CurrencyAmount decimal.Decimal
}

// ParseEvent extracts an Event from the postback query parameters.
// All six fields are required and both amounts must be finite numbers.
func ParseEvent(query map[string]string) (Event, error) {
	userID := firstValue(query, userIDKeys...)
	transactionID := firstValue(query, transactionIDKeys...)
	rawRevenue := query[revenueKey]
	signature := query[hashKey]
	eventType := query[typeKey]
	rawAmount := query[currencyAmountKey]

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"userid", userID},
		{revenueKey, rawRevenue},
		{"transactionid", transactionID},
		{hashKey, signature},
		{typeKey, eventType},
		{currencyAmountKey, rawAmount},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return Event{}, fmt.Errorf("%w: missing %s", ErrInvalidParameters, strings.Join(missing, ","))
	}

	revenue, ok := parseAmount(rawRevenue)
	if !ok {
		return Event{}, fmt.Errorf("%w: revenue %q is not a number", ErrInvalidParameters, rawRevenue)
	}
	amount, ok := parseAmount(rawAmount)
	if !ok {
		return Event{}, fmt.Errorf("%w: currencyAmount %q is not a number", ErrInvalidParameters, rawAmount)
	}

	return Event{
		UserID:         userID,
		Revenue:        revenue,
		TransactionID:  transactionID,
		Signature:      signature,
		Type:           eventType,
		CurrencyAmount: amount,
	}, nil
}

// IsChargeback reports whether the event reverses a previous credit.
func (e Event) IsChargeback() bool {
	return e.Type == TypeChargeback
}

func firstValue(query map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := query[k]; v != "" {
			return v
		}
	}
	return ""
}
