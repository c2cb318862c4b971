package wealth

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when a standing order id does not exist.
	ErrOrderNotFound = errors.New("standing order not found")
	// ErrMissingSchedule is returned when a standing order has no valid frequency.
	ErrMissingSchedule = errors.New("standing order has no schedule")
)

// StandingOrder is a recurring income or expense. Each evaluation tick
// materializes every occurrence that has come due since the last one.
type StandingOrder struct {
	ID            string    `json:"id"`
	Type          TxType    `json:"type"`
	Amount        Money     `json:"amount"`
	Note          string    `json:"note"`
	Frequency     Frequency `json:"frequency"`
	NextExecution Date      `json:"nextExecution,omitzero"`
	Account       string    `json:"account"`
	// UseAuto routes income through the auto-split account instead of a
	// fixed one.
	UseAuto bool `json:"useAuto,omitempty"`
}

func (o *StandingOrder) String() string {
	return fmt.Sprintf("%s %s %s %q, next on %s", o.Frequency, o.Type, o.Amount, o.Note, o.NextExecution)
}

// target returns the account the materialized transaction is booked on.
func (o *StandingOrder) target() string {
	if o.UseAuto && o.Type == Income {
		return AutoSplitAccount
	}
	return o.Account
}

// OrderStore holds standing orders in creation order.
type OrderStore struct {
	orders []*StandingOrder
}

func NewOrderStore() *OrderStore { return &OrderStore{} }

func (s *OrderStore) Len() int { return len(s.orders) }

// All iterates orders in creation order.
func (s *OrderStore) All() iter.Seq[*StandingOrder] {
	return func(yield func(*StandingOrder) bool) {
		for _, o := range s.orders {
			if !yield(o) {
				return
			}
		}
	}
}

// Get returns the order with the given id, or nil.
func (s *OrderStore) Get(id string) *StandingOrder {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Add registers a new standing order. A zero first execution date means
// "starting now": the scheduler initializes it on the next tick.
func (s *OrderStore) Add(t TxType, amount Money, note string, freq Frequency, first Date, account string, useAuto bool) (*StandingOrder, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("standing order of %s: %w", amount, ErrInvalidAmount)
	}
	if _, err := ParseFrequency(string(freq)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSchedule, err)
	}
	o := &StandingOrder{
		ID:            uuid.NewString(),
		Type:          t,
		Amount:        amount,
		Note:          note,
		Frequency:     freq,
		NextExecution: first,
		Account:       account,
		UseAuto:       useAuto,
	}
	s.orders = append(s.orders, o)
	return o, nil
}

// Delete removes a standing order. Transactions it already materialized
// stay in the ledger.
func (s *OrderStore) Delete(id string) error {
	i := slices.IndexFunc(s.orders, func(o *StandingOrder) bool { return o.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrOrderNotFound, id)
	}
	s.orders = slices.Delete(s.orders, i, i+1)
	return nil
}

// Evaluate materializes every occurrence due on or before today, across
// all orders, and returns the transactions it recorded. An order whose
// application fails (typically insufficient funds on an expense) stops
// draining for this tick and is retried on the next one; its error is
// joined into the returned error without blocking the other orders.
func (s *OrderStore) Evaluate(today Date, ledger *Ledger, accounts *AccountStore, policy *AutoSplitPolicy) ([]Transaction, error) {
	var done []Transaction
	var errs []error
	for _, o := range s.orders {
		if o.NextExecution.IsZero() {
			o.NextExecution = today
		}
		for !o.NextExecution.After(today) {
			due := o.NextExecution
			tx := Transaction{
				ID:        uuid.NewString(),
				Type:      o.Type,
				Amount:    o.Amount,
				Account:   o.target(),
				Note:      o.Note,
				Category:  "Standing Order",
				Timestamp: due.Time(),
			}
			if err := ledger.Record(tx, accounts, policy); err != nil {
				errs = append(errs, fmt.Errorf("standing order %q due %s: %w", o.Note, due, err))
				break
			}
			done = append(done, tx)
			o.NextExecution = due.Add(o.Frequency.Days())
		}
	}
	return done, errors.Join(errs...)
}
