package models

import "github.com/shopspring/decimal"

// PaymentMethod tags the channel a transaction moved through.
type PaymentMethod string

const (
	MethodWallet     PaymentMethod = "Wallet"
	MethodEkubPayout PaymentMethod = "Ekub Payout"
	MethodChapa      PaymentMethod = "Chapa"
	MethodMPesa      PaymentMethod = "M-PESA"
)

// IsGateway reports whether the method is an external payment gateway
// that settles through a callback.
func (m PaymentMethod) IsGateway() bool {
	return m == MethodChapa || m == MethodMPesa
}

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Pending"
	StatusCompleted TransactionStatus = "Completed"
)

// Wallet is a user's balance. It is created together with the user and only
// changes through the wallet ledger.
type Wallet struct {
	// UserID is the owner of the wallet. One wallet per user.
	UserID string

	// Balance is the spendable amount. Never negative.
	Balance decimal.Decimal

	// Currency is the ISO code of the balance (e.g. "ETB").
	Currency string

	// CreatedAt is the Unix timestamp when the wallet was opened.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last balance change.
	UpdatedAt int64
}

// Transaction is an append-only ledger entry. The only permitted mutation
// is a status change from Pending to Completed.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// UserID is the owning wallet.
	UserID string

	// Amount is signed: positive for credits, negative for debits.
	Amount decimal.Decimal

	// Description is a human-readable summary
	// (e.g. "Contribution to Family Ekub").
	Description string

	// Method is the payment channel tag.
	Method PaymentMethod

	// Status is Pending until a gateway confirms, Completed otherwise.
	Status TransactionStatus

	// Reference is the external reference handed to a payment gateway.
	// Empty for internal movements.
	Reference string

	// CreatedAt is the Unix timestamp when the entry was appended.
	CreatedAt int64
}
