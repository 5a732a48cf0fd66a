package enums

// PaymentMethod is the instrument used to settle an order.
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodPaypal       PaymentMethod = "PAYPAL"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodApplePay     PaymentMethod = "APPLE_PAY"
	PaymentMethodWechatPay    PaymentMethod = "WECHAT_PAY"
)

// PaymentMethods returns the method pool for uniform draws.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCard,
		PaymentMethodPaypal,
		PaymentMethodBankTransfer,
		PaymentMethodApplePay,
		PaymentMethodWechatPay,
	}
}

// PaymentStatus tracks the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// PaymentStatuses returns the statuses in their selector order. Payments
// index this slice with order_id mod len; cancelled orders force REFUNDED.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusCompleted,
		PaymentStatusPending,
		PaymentStatusFailed,
		PaymentStatusRefunded,
	}
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string { return string(p) }

// String implements fmt.Stringer.
func (p PaymentStatus) String() string { return string(p) }
