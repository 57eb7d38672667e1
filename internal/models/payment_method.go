package models

type PaymentMethod int

const (
	MethodUnknown PaymentMethod = iota
	MethodCreditCard
	MethodPayPal
	MethodCrypto
)

var methodsBySelector = map[string]PaymentMethod{
	"1": MethodCreditCard,
	"2": MethodPayPal,
	"3": MethodCrypto,
}

// PaymentMethods returns the selectable methods in menu order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodCreditCard, MethodPayPal, MethodCrypto}
}

// ParsePaymentMethod maps a menu selector ("1", "2" or "3") to its method.
func ParsePaymentMethod(selector string) (PaymentMethod, bool) {
	method, ok := methodsBySelector[selector]
	return method, ok
}

func (m PaymentMethod) Selector() string {
	switch m {
	case MethodCreditCard:
		return "1"
	case MethodPayPal:
		return "2"
	case MethodCrypto:
		return "3"
	}
	return ""
}

// Code is the stable identifier used in logs and receipts.
func (m PaymentMethod) Code() string {
	switch m {
	case MethodCreditCard:
		return "credit_card"
	case MethodPayPal:
		return "paypal"
	case MethodCrypto:
		return "crypto"
	}
	return "unknown"
}

func (m PaymentMethod) String() string {
	switch m {
	case MethodCreditCard:
		return "Credit Card"
	case MethodPayPal:
		return "PayPal"
	case MethodCrypto:
		return "Cryptocurrency"
	}
	return "Unknown"
}
