package domain

import "errors"

var (
	// ErrNotFound means a lookup matched no row. An empty period is
	// not an error and never maps here.
	ErrNotFound = errors.New("not found")

	// ErrAccountNotFound means a journal line named an account that is
	// not in the chart. Wrapped with the offending name at the point
	// of resolution.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccountName surfaces the uniqueness constraint on
	// account names.
	ErrDuplicateAccountName = errors.New("account name already exists")

	// ErrInvalidPeriod means a malformed year/month request, rejected
	// before any query executes.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrUnbalancedTransaction means debit and credit totals differ.
	ErrUnbalancedTransaction = errors.New("transaction does not balance")

	// ErrInvalidAmount means a negative amount or a detail line with
	// both sides set.
	ErrInvalidAmount = errors.New("invalid amount")
)
