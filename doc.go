// Package wealth provides the core engine of a single-user personal-finance
// ledger. It is designed to be local-first, auditable, and extensible,
// ensuring users have full control and transparency over their financial data.
//
// The core functionalities include:
//   - Account Store: named accounts with a balance and an amount allocated
//     to savings goals.
//   - Transaction Ledger: an append-only record of income and expense events,
//     with symmetric apply/revert effects on account balances and support for
//     auto-split income distribution.
//   - Standing Orders: recurring transaction templates materialized into the
//     ledger whenever they come due.
//   - Goal Tracker: savings targets with running totals, contribution
//     streaks, milestone flags, and allocation bookkeeping against accounts.
//   - Streak & Badge Engine: consecutive-day engagement streaks derived from
//     the recorded history, and one-time achievement badges.
//   - Data Persistence: whole-file atomic encoding and decoding of every
//     record store to human-readable, version-controllable formats (JSONL
//     for the ledger, JSON documents for the rest).
//
// This package serves as the foundational logic for the `wealth` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package wealth
