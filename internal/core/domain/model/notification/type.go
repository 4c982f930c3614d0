package notification

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Type tags a notification with the workflow event that caused it.
// The set is closed; transport code treats the string form as the wire value.
type Type int

const (
	TypeUnknown Type = iota
	TypeQuoteReceived
	TypeQuoteAccepted
	TypeQuoteRejected
	TypeOrderConfirmed
	TypeOrderCompleted
	TypeReviewReceived
	TypeProjectUpdated
	TypeDirectOrderReceived
	TypeDirectOrderAccepted
	TypeDirectOrderDeclined
	TypeDirectOrderCompleted
	TypeDirectOrderCancelled
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:              "unknown",
		TypeQuoteReceived:        "quote_received",
		TypeQuoteAccepted:        "quote_accepted",
		TypeQuoteRejected:        "quote_rejected",
		TypeOrderConfirmed:       "order_confirmed",
		TypeOrderCompleted:       "order_completed",
		TypeReviewReceived:       "review_received",
		TypeProjectUpdated:       "project_updated",
		TypeDirectOrderReceived:  "direct_order_received",
		TypeDirectOrderAccepted:  "direct_order_accepted",
		TypeDirectOrderDeclined:  "direct_order_declined",
		TypeDirectOrderCompleted: "direct_order_completed",
		TypeDirectOrderCancelled: "direct_order_cancelled",
	}
}

// TypeFromString parses the wire/database representation of a type tag.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"type",
		fmt.Errorf("%q is not a valid notification type", s),
	)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// String returns the snake_case tag.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
