package ledger

import (
	"fmt"
	"slices"
	"strings"
)

// AccountSeparator separates the components of an account path.
const AccountSeparator = ":"

// Root accounts, in their canonical spelling.
const (
	Assets      = "ASSETS"
	Liabilities = "LIABILITIES"
	Income      = "INCOME"
	Expenses    = "EXPENSES"
	Equity      = "EQUITY"
)

// rootSigns tells whether postings increase or decrease an account of each root.
//
// Postings are not written as debits and credits, they change accounts by a
// positive or negative amount. A transaction balances when its amounts sum to
// zero once multiplied by the sign of their account: "Assets: +1, Income: +1"
// balances, and so does "Assets: -1, Expenses: +1".
var rootSigns = map[string]int{
	Assets:      1,
	Liabilities: -1,
	Income:      -1,
	Expenses:    1,
	Equity:      -1,
}

// rootAliases regularises the root names that are commonly written differently.
var rootAliases = map[string]string{
	"EXPENSE":   Expenses,
	"ASSET":     Assets,
	"LIABILITY": Liabilities,
	"REVENUE":   Income,
	"REVENUES":  Income,
}

// AccountPath is the analysed form of an account string.
type AccountPath struct {
	Original []string // components with their original spelling
	Regular  []string // canonical components, used as keys
}

// Key returns the canonical account string, e.g. "EXPENSES:CHARITY".
func (p AccountPath) Key() string { return strings.Join(p.Regular, AccountSeparator) }

// Canonicalize splits account into components.
//
// The regular version is upper-cased and its root is made plural when the
// singular was used, "revenue" roots are treated as "income".
func Canonicalize(account string) AccountPath {
	original := strings.Split(account, AccountSeparator)
	regular := make([]string, len(original))
	regular[0] = RootAccountName(account)
	for i, component := range original[1:] {
		regular[i+1] = strings.ToUpper(component)
	}
	return AccountPath{Original: original, Regular: regular}
}

// RootAccountName returns the regularised name of account's root.
func RootAccountName(account string) string {
	root, _, _ := strings.Cut(account, AccountSeparator)
	root = strings.ToUpper(root)
	if alias, ok := rootAliases[root]; ok {
		return alias
	}
	return root
}

// RootSign returns +1 for accounts that debits increase, and -1 for the others.
func RootSign(account string) (int, error) {
	root := RootAccountName(account)
	sign, ok := rootSigns[root]
	if !ok {
		return 0, fmt.Errorf("%w: unknown root account %q in %q", ErrInvalidAccount, root, account)
	}
	return sign, nil
}

// ValidateAccount checks that account has a known root and no empty component.
func ValidateAccount(account string) error {
	if _, err := RootSign(account); err != nil {
		return err
	}
	if slices.Contains(strings.Split(account, AccountSeparator), "") {
		return fmt.Errorf("%w: empty component in %q", ErrInvalidAccount, account)
	}
	return nil
}

// IsValidAccount reports whether account is a valid account string.
func IsValidAccount(account string) bool { return ValidateAccount(account) == nil }

// ContainsAccount reports whether parent names child or one of its ancestors.
func ContainsAccount(parent, child string) bool {
	p := Canonicalize(parent).Regular
	c := Canonicalize(child).Regular
	return len(p) <= len(c) && slices.Equal(p, c[:len(p)])
}

// AccountAndParents returns the canonical names of account's ancestors, root
// first, followed by account's own canonical name.
func AccountAndParents(account string) []string {
	regular := Canonicalize(account).Regular
	result := make([]string, len(regular))
	for i := range regular {
		result[i] = strings.Join(regular[:i+1], AccountSeparator)
	}
	return result
}
