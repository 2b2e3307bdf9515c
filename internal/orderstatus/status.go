// Package orderstatus derives the display status for an order record whose
// shape is not guaranteed. The shop API's order schema evolved over time, so
// several independent signals have to be reconciled with a fixed precedence;
// this is the only place that reconciliation lives, so every view renders the
// same order with the same status.
package orderstatus

import "strings"

// Canonical statuses. Anything else is an upstream passthrough.
const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Statuses an admin may set explicitly.
var Assignable = []string{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// Signals are the order fields consulted for derivation. Any subset may be
// populated.
type Signals struct {
	Status              string
	IsCancelled         bool
	IsDelivered         bool
	IsPaid              bool
	TrackingNumber      string
	PaymentResultStatus string
}

// Derive returns the display status for the order, first match wins:
//
//  1. an explicit status field is authoritative and passes through verbatim
//  2. cancelled
//  3. delivered
//  4. paid: shipped when tracking exists (or the payment processor says
//     shipped), processing otherwise
//  5. the payment processor status: pending means processing, anything else
//     passes through
//  6. processing
func Derive(s Signals) string {
	if s.Status != "" {
		return s.Status
	}
	if s.IsCancelled {
		return StatusCancelled
	}
	if s.IsDelivered {
		return StatusDelivered
	}
	if s.IsPaid {
		if s.TrackingNumber != "" || strings.EqualFold(s.PaymentResultStatus, StatusShipped) {
			return StatusShipped
		}
		return StatusProcessing
	}
	if s.PaymentResultStatus != "" {
		if strings.EqualFold(s.PaymentResultStatus, "pending") {
			return StatusProcessing
		}
		return s.PaymentResultStatus
	}
	return StatusProcessing
}

// Format capitalizes the first letter for display, preserving the rest.
func Format(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

// BadgeColor maps a derived status onto the badge palette, case-insensitively.
func BadgeColor(status string) string {
	switch strings.ToLower(status) {
	case StatusProcessing:
		return "warning"
	case StatusShipped:
		return "info"
	case StatusDelivered:
		return "success"
	case StatusCancelled:
		return "danger"
	default:
		return "neutral"
	}
}

// IsAssignable reports whether an admin may set the given status.
func IsAssignable(status string) bool {
	for _, allowed := range Assignable {
		if status == allowed {
			return true
		}
	}
	return false
}
