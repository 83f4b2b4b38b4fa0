package models

const (
	MethodDebitCard  = "Debit Card"
	MethodCreditCard = "Credit Card"
	MethodUPI        = "UPI"
)

// Payment carries the instrument entered at checkout. Card fields apply to the
// card methods, UPIID to UPI.
type Payment struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardName   string `json:"cardName,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	UPIID      string `json:"upiId,omitempty"`
}

// IsUPI reports whether the selected method is UPI; everything else is card.
func (p Payment) IsUPI() bool {
	return p.Method == MethodUPI
}
