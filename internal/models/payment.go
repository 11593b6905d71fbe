package models

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
)

// Payment records a fee submission. StudentName and Class are denormalized
// at submission time so guest payers without a student record can pay too.
// The only transition is pending -> verified, performed by an admin.
type Payment struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"studentId"`
	StudentName     string        `json:"studentName"`
	Class           string        `json:"class"`
	Amount          float64       `json:"amount"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	TransactionNote string        `json:"transactionNote,omitempty"`
	VerifiedBy      string        `json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time    `json:"verifiedAt,omitempty"`
}
