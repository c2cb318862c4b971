package wealth

import (
	"errors"
	"fmt"
	"iter"
)

// Errors shared by account-affecting operations.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account holds a named balance and the portion of it earmarked for goals.
//
// Allocated is bookkeeping only: it never moves cash by itself and may
// transiently exceed the balance after reverts.
type Account struct {
	Name      string `json:"name"`
	Balance   Money  `json:"balance"`
	Allocated Money  `json:"allocated"`
}

// Free returns the part of the balance not earmarked for goals.
func (a *Account) Free() Money { return a.Balance.Sub(a.Allocated) }

// AccountStore is the mapping of account name to account. Accounts keep
// their creation order, which is also their persisted order.
type AccountStore struct {
	accounts []*Account
}

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make([]*Account, 0)}
}

// Get returns the account with that name, or nil if unknown.
func (s *AccountStore) Get(name string) *Account {
	for _, a := range s.accounts {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Len returns the number of accounts.
func (s *AccountStore) Len() int { return len(s.accounts) }

// All iterates accounts in creation order.
func (s *AccountStore) All() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range s.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Create adds a new account with an initial balance and nothing allocated.
// Duplicate names are rejected.
func (s *AccountStore) Create(name string, initial Money) (*Account, error) {
	if name == "" {
		return nil, fmt.Errorf("account name is missing")
	}
	if s.Get(name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAccount, name)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance %s", ErrInvalidAmount, initial)
	}
	a := &Account{Name: name, Balance: initial}
	s.accounts = append(s.accounts, a)
	return a, nil
}

// Transfer atomically debits from and credits to. It fails without any
// effect if the amount is not positive, either account is unknown, or the
// source balance cannot cover the amount.
func (s *AccountStore) Transfer(from, to string, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount %s must be positive", ErrInvalidAmount, amount)
	}
	sender := s.Get(from)
	if sender == nil {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, from)
	}
	receiver := s.Get(to)
	if receiver == nil {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, to)
	}
	if sender.Balance.LessThan(amount) {
		return fmt.Errorf("%w: cannot transfer %s from %q, balance is %s", ErrInsufficientFunds, amount, from, sender.Balance)
	}
	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)
	return nil
}

// Delete removes the account. It does not check for references held by
// goals or standing orders; callers that need referential integrity do
// that check first (see Book.DeleteAccount).
func (s *AccountStore) Delete(name string) error {
	for i, a := range s.accounts {
		if a.Name == name {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
}

// ResetAllocation unconditionally zeroes the allocated amount. This is a
// manual correction, not goal-aware.
func (s *AccountStore) ResetAllocation(name string) error {
	a := s.Get(name)
	if a == nil {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	a.Allocated = Money{}
	return nil
}

// TotalBalance sums all account balances.
func (s *AccountStore) TotalBalance() Money {
	var total Money
	for _, a := range s.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// TotalAllocated sums all allocated amounts.
func (s *AccountStore) TotalAllocated() Money {
	var total Money
	for _, a := range s.accounts {
		total = total.Add(a.Allocated)
	}
	return total
}
