package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRootAccountName(t *testing.T) {
	tests := []struct {
		account string
		want    string
	}{
		{"Equity:Matthew", "EQUITY"},
		{"Assets:Cash", "ASSETS"},
		{"Asset:Cash", "ASSETS"},
		{"liability", "LIABILITIES"},
		{"expense", "EXPENSES"},
		{"Revenue:Sales", "INCOME"},
		{"revenues", "INCOME"},
		{"Stuff:Things", "STUFF"},
	}
	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			if got := RootAccountName(tt.account); got != tt.want {
				t.Errorf("RootAccountName(%q) = %q, want %q", tt.account, got, tt.want)
			}
		})
	}
}

func TestRootSign(t *testing.T) {
	tests := []struct {
		account string
		want    int
		err     error
	}{
		{"Assets:Cash", 1, nil},
		{"Expense:Food", 1, nil},
		{"Liabilities:Visa", -1, nil},
		{"Income:Wages", -1, nil},
		{"Revenue", -1, nil},
		{"Equity", -1, nil},
		{"Stuff", 0, ErrInvalidAccount},
	}
	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			got, err := RootSign(tt.account)
			if !errors.Is(err, tt.err) {
				t.Fatalf("RootSign(%q) error = %v, want %v", tt.account, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("RootSign(%q) = %d, want %d", tt.account, got, tt.want)
			}
		})
	}
}

func TestIsValidAccount(t *testing.T) {
	tests := []struct {
		account string
		want    bool
	}{
		{"assets:matthew", true},
		{"assets.matthew", false},
		{"Assets", true},
		{"Assets::Cash", false},
		{"Assets:", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			if got := IsValidAccount(tt.account); got != tt.want {
				t.Errorf("IsValidAccount(%q) = %v, want %v", tt.account, got, tt.want)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	got := Canonicalize("equity:foo")
	want := AccountPath{Original: []string{"equity", "foo"}, Regular: []string{"EQUITY", "FOO"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Canonicalize() mismatch (-want +got):\n%s", diff)
	}

	// canonical keys are stable.
	for _, account := range []string{"Expense:Food:Bread", "revenue:sales", "Assets:Bank:Westpac"} {
		key := Canonicalize(account).Key()
		if again := Canonicalize(key).Key(); again != key {
			t.Errorf("Canonicalize(%q) = %q, want %q", key, again, key)
		}

		path := Canonicalize(account)
		if diff := cmp.Diff(path, Canonicalize(strings.Join(path.Original, AccountSeparator))); diff != "" {
			t.Errorf("Canonicalize(%q) is not stable (-first +again):\n%s", account, diff)
		}
	}
}

func TestContainsAccount(t *testing.T) {
	tests := []struct {
		parent, child string
		want          bool
	}{
		{"Income", "Expenses:Phone", false},
		{"Income", "Income:Salary", true},
		{"Expense", "Expenses:Phone", true},
		{"Expenses:Phone", "expenses:phone", true},
		{"Expenses:Phone", "Expenses", false},
		{"Expenses:Ph", "Expenses:Phone", false},
	}
	for _, tt := range tests {
		t.Run(tt.parent+"/"+tt.child, func(t *testing.T) {
			if got := ContainsAccount(tt.parent, tt.child); got != tt.want {
				t.Errorf("ContainsAccount(%q, %q) = %v, want %v", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

func TestAccountAndParents(t *testing.T) {
	got := AccountAndParents("expenses:charity:Sponsorship:40HrFamine")
	want := []string{
		"EXPENSES",
		"EXPENSES:CHARITY",
		"EXPENSES:CHARITY:SPONSORSHIP",
		"EXPENSES:CHARITY:SPONSORSHIP:40HRFAMINE",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AccountAndParents() mismatch (-want +got):\n%s", diff)
	}
}
