package wealth

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// AutoSplitAccount is the sentinel account name carried by transactions
// whose amount was distributed across accounts by the active policy.
const AutoSplitAccount = "Auto-Split"

// ErrEmptySplitPolicy reports an auto-split application whose configured
// ratios sum to zero, which would silently distribute nothing.
var ErrEmptySplitPolicy = errors.New("auto-split ratios are not set up")

// AutoSplitPolicy is the percentage distribution table used by manual
// income entry and standing orders. Ratios need not sum to 100: the
// applied split always normalizes by the configured ratio sum, so the
// displayed percentages are advisory only.
type AutoSplitPolicy struct {
	Enabled bool                       `json:"enabled"`
	Ratios  map[string]decimal.Decimal `json:"ratios"`
}

// NewAutoSplitPolicy returns a disabled policy with no ratios.
func NewAutoSplitPolicy() *AutoSplitPolicy {
	return &AutoSplitPolicy{Ratios: make(map[string]decimal.Decimal)}
}

// Set stores the ratio table. enabled marks it as the default used by new
// income transactions and standing orders unless the caller opts out.
func (p *AutoSplitPolicy) Set(ratios map[string]decimal.Decimal, enabled bool) {
	if ratios == nil {
		ratios = make(map[string]decimal.Decimal)
	}
	p.Ratios = ratios
	p.Enabled = enabled
}

// Sum returns the total of all configured ratios.
func (p *AutoSplitPolicy) Sum() decimal.Decimal {
	var total decimal.Decimal
	for _, r := range p.Ratios {
		total = total.Add(r)
	}
	return total
}

// Share returns the normalized portion of amount destined to the named
// account: amount * ratio[name] / sum(ratios). Unknown names get zero.
func (p *AutoSplitPolicy) Share(amount Money, name string) Money {
	return amount.Share(p.Ratios[name], p.Sum())
}

// Accounts iterates the configured account names in a stable order.
func (p *AutoSplitPolicy) Accounts() iter.Seq[string] {
	names := slices.Collect(maps.Keys(p.Ratios))
	slices.Sort(names)
	return func(yield func(string) bool) {
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Validate checks that the policy can actually distribute something.
func (p *AutoSplitPolicy) Validate() error {
	if !p.Sum().IsPositive() {
		return ErrEmptySplitPolicy
	}
	for name, r := range p.Ratios {
		if r.IsNegative() {
			return fmt.Errorf("negative ratio %s for account %q", r, name)
		}
	}
	return nil
}
