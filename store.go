package wealth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// File names under the store directory. Each collection lives in its own
// file so partial histories from older versions still load.
const (
	accountsFile = "accounts.json"
	ledgerFile   = "transactions.jsonl"
	ordersFile   = "standing_orders.json"
	goalsFile    = "goals.json"
	splitFile    = "auto_split.json"
	badgesFile   = "badges.json"
	profileFile  = "user_profile.json"
	tipsFile     = "tips.json"
)

// Store reads and writes a Book under a single directory.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store { return &Store{Dir: dir} }

// Load reads the whole book. Missing files yield their empty default, so a
// fresh directory or one written by an older version loads cleanly.
func (s *Store) Load() (*Book, error) {
	b := NewBook()

	if err := s.loadJSON(accountsFile, &b.Accounts.accounts); err != nil {
		return nil, err
	}
	if err := s.loadJSON(ordersFile, &b.Orders.orders); err != nil {
		return nil, err
	}
	if err := s.loadJSON(goalsFile, &b.Goals.goals); err != nil {
		return nil, err
	}
	if err := s.loadJSON(splitFile, b.Policy); err != nil {
		return nil, err
	}
	if b.Policy.Ratios == nil {
		b.Policy.Ratios = make(map[string]decimal.Decimal)
	}
	var badges []Badge
	if err := s.loadJSON(badgesFile, &badges); err != nil {
		return nil, err
	}
	for _, badge := range badges {
		b.Badges.Award(badge.ID, badge.Title, badge.Description, badge.AwardedAt)
	}
	if err := s.loadJSON(profileFile, &b.Profile); err != nil {
		return nil, err
	}
	if err := s.loadJSON(tipsFile, &b.Tips); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.Dir, ledgerFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// keep the empty ledger
	case err != nil:
		return nil, fmt.Errorf("could not open ledger: %w", err)
	default:
		defer f.Close()
		if b.Ledger, err = DecodeLedger(f); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Save writes the whole book back. Each file is written to a temporary
// sibling and renamed over the old one, so a crash mid-save never leaves a
// truncated file behind.
func (s *Store) Save(b *Book) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.Dir, err)
	}

	if err := s.saveJSON(accountsFile, b.Accounts.accounts); err != nil {
		return err
	}
	if err := s.saveJSON(ordersFile, b.Orders.orders); err != nil {
		return err
	}
	if err := s.saveJSON(goalsFile, b.Goals.goals); err != nil {
		return err
	}
	if err := s.saveJSON(splitFile, b.Policy); err != nil {
		return err
	}
	badges := make([]Badge, 0, b.Badges.Len())
	for badge := range b.Badges.All() {
		badges = append(badges, badge)
	}
	if err := s.saveJSON(badgesFile, badges); err != nil {
		return err
	}
	if err := s.saveJSON(profileFile, b.Profile); err != nil {
		return err
	}
	if err := s.saveJSON(tipsFile, b.Tips); err != nil {
		return err
	}
	return s.saveLedger(b.Ledger)
}

// loadJSON decodes one collection file into v. A missing file leaves v
// untouched.
func (s *Store) loadJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not decode %s: %w", name, err)
	}
	return nil
}

// saveJSON atomically writes v as indented JSON to the named file.
func (s *Store) saveJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	return s.writeAtomic(name, append(data, '\n'))
}

func (s *Store) saveLedger(ledger *Ledger) error {
	tmp, err := os.CreateTemp(s.Dir, ledgerFile+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}
	return os.Rename(tmp.Name(), filepath.Join(s.Dir, ledgerFile))
}

func (s *Store) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.Dir, name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary file for %s: %w", name, err)
	}
	return os.Rename(tmp.Name(), filepath.Join(s.Dir, name))
}
