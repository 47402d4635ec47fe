package models

// PaymentItemFilter narrows a payment item listing. ExpenseOnly and
// IncomeOnly are mutually exclusive; CategoryIDs match descendants too.
type PaymentItemFilter struct {
	ExpenseOnly bool
	IncomeOnly  bool
	CategoryIDs []uint
}
