package models

// PaymentAuthorization is the handle returned by the payment gateway for a
// pending charge. The client secret lets the browser complete the charge;
// the intent ID lets the server confirm or inspect it.
type PaymentAuthorization struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// PaymentConfirmation is the input for a server-side charge confirmation.
// Card data never reaches this server; the client tokenizes it into a
// payment method first.
type PaymentConfirmation struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}
