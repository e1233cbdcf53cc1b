package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidBudget   = errors.New("budget must be a plain number with up to two decimal places")
	ErrInvalidDates    = errors.New("invalid date range")
	ErrTripNotFound    = errors.New("trip not found")
	ErrBudgetTooLow    = errors.New("budget too low")
	ErrDatabaseError   = errors.New("database error")
	ErrNotConfigured   = errors.New("completion provider API key not configured")
	ErrEmptyCompletion = errors.New("no response from the completion service")
)

// ExtractionError is returned when no parseable JSON document could be
// recovered from a model response. Raw carries the original text for
// diagnostics; it is logged, never silently discarded.
type ExtractionError struct {
	Raw string
}

func (e *ExtractionError) Error() string {
	return "could not extract valid JSON from the model response"
}

// BudgetExceededError is returned when any extracted cost figure exceeds the
// user's stated budget. Required is the maximum of the extracted figures,
// i.e. the minimum the user would need to budget.
type BudgetExceededError struct {
	Symbol   string
	Budget   float64
	Required float64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("plan exceeds your budget of %s%s: you would need at least %s%s",
		e.Symbol, formatAmount(e.Budget), e.Symbol, formatAmount(e.Required))
}

// IncompletePlanError is returned when the recovered plan does not contain
// the requested number of days, typically because the model response was
// truncated at its token ceiling.
type IncompletePlanError struct {
	Expected int
	Got      int
}

func (e *IncompletePlanError) Error() string {
	return fmt.Sprintf("plan is incomplete: requested %d days but received %d; try again or plan a shorter trip",
		e.Expected, e.Got)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
