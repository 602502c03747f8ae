// Package ledger implements a plain-text double-entry bookkeeping engine.
//
// A journal is a sequence of dated transactions, each a group of postings to
// hierarchical accounts rooted at Assets, Liabilities, Income, Expenses or
// Equity, plus standalone balance assertions:
//
//	2013-01-01 Opening balance
//	Assets:Cash          $228.63
//	Equity:Opening       $228.63
//
//	VERIFY-BALANCE 2013-01-02 Assets:Cash $228.63
//
// The package covers:
//   - Journal decoding and encoding, with line-numbered diagnostics.
//   - Account naming: canonical keys that ignore case and singular/plural roots.
//   - The account tree, booking postings and aggregating balances to ancestors.
//   - Verification of balance assertions against the date-ordered journal.
//   - Reports: chart of accounts, balances at a date or between two dates,
//     and an account register.
//
// Amounts are fixed-point quantities of hundredths of a single unit of
// account. The engine is stateless: every report builds its own tree from the
// transactions it is given.
//
// This package serves as the foundational logic for the `ledger`
// command-line tool.
package ledger
