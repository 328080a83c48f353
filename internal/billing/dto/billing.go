package dto

// CreateOrderRequest mirrors the checkout form: amount is in whole currency
// units and gets converted to subunits before hitting the gateway.
type CreateOrderRequest struct {
	Amount   int64  `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required"`
	Receipt  string `json:"receipt"`
	UserID   string `json:"userId" binding:"required"`
	PlanName string `json:"planName" binding:"required"`
}

// ValidatePaymentRequest carries the gateway callback fields. Field names
// match the Razorpay checkout response verbatim.
type ValidatePaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}
