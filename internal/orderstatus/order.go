package orderstatus

import "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"

// FromOrder pulls the status signals out of an upstream order record.
func FromOrder(order shopapi.OrderView) Signals {
	s := Signals{
		Status:         order.Status,
		IsCancelled:    order.IsCancelled,
		IsDelivered:    order.IsDelivered,
		IsPaid:         order.IsPaid,
		TrackingNumber: order.TrackingNumber,
	}
	if order.PaymentResult != nil {
		s.PaymentResultStatus = order.PaymentResult.Status
	}
	return s
}

// DeriveOrder is Derive applied straight to an upstream order record.
func DeriveOrder(order shopapi.OrderView) string {
	return Derive(FromOrder(order))
}
