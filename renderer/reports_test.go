package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
)

const journal = `2013-01-01 Opening balance
  Assets:Cash     $1,000.00
  Equity:Opening  $1,000.00

2013-01-05 Angus birthday present
  Expenses:Birthdays:Angus  $45.50
  Assets:Cash              -$45.50

2013-01-15 Salary
  Assets:Bank     $2,500.00
  Income:Wages    $2,500.00
`

func decode(t *testing.T) *ledger.Journal {
	t.Helper()
	j, err := ledger.DecodeJournal(strings.NewReader(journal), ledger.DecodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return j
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestChartMarkdown(t *testing.T) {
	j := decode(t)
	got := ChartMarkdown(ledger.NewTree(j.Transactions))
	assertContains(t, got,
		"# Chart of Accounts",
		"- Assets\n",
		"  - Bank\n",
		"  - Cash\n",
		"- Expenses:Birthdays:Angus\n",
	)
}

func TestBalancesMarkdown(t *testing.T) {
	j := decode(t)

	s, err := ledger.NewBalanceSheet(j.Transactions, ledger.BalanceOptions{})
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, BalancesMarkdown(s),
		"# Balances\n",
		"Balance",
		"$3,454.50",
		"\u00a0\u00a0Cash",
		"Income:Wages",
	)

	s, err = ledger.NewBalanceSheet(j.Transactions, ledger.BalanceOptions{AsAt: date.New(2013, 1, 10)})
	if err != nil {
		t.Fatal(err)
	}
	got := BalancesMarkdown(s)
	assertContains(t, got, "# Balances as at 2013-01-10", "$954.50")
	if strings.Contains(got, "Income") {
		t.Errorf("balances as at 2013-01-10 should not contain later accounts:\n%s", got)
	}

	s, err = ledger.NewBalanceSheet(j.Transactions, ledger.BalanceOptions{First: date.New(2013, 1, 2), Last: date.New(2013, 1, 31)})
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, BalancesMarkdown(s),
		"# Balances from 2013-01-02 to 2013-01-31",
		"Change",
		"-$45.50",
	)
}

func TestRegisterMarkdown(t *testing.T) {
	j := decode(t)
	rows, err := ledger.Register(j.Transactions, ledger.RegisterOptions{Account: "Assets:Cash"})
	if err != nil {
		t.Fatal(err)
	}

	got := RegisterMarkdown("Assets:Cash", rows, false)
	assertContains(t, got,
		"# Register for Assets:Cash",
		"Description",
		"Opening balance",
		"Angus birthday present",
		"$954.50",
	)
	if first, second := strings.Index(got, "Opening balance"), strings.Index(got, "Angus birthday present"); first > second {
		t.Errorf("register rows are not in date order:\n%s", got)
	}

	got = RegisterMarkdown("Assets:Cash", rows, true)
	if first, second := strings.Index(got, "Opening balance"), strings.Index(got, "Angus birthday present"); first < second {
		t.Errorf("reversed register rows are in date order:\n%s", got)
	}
}
