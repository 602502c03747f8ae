package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/ledger/date"
)

// Node is an account in a Tree.
type Node struct {
	name           string // original spelling of the first occurrence
	key            string // canonical component
	children       map[string]*Node
	balances       Balances
	postings       []*Posting
	hasOwnPostings bool
}

func newNode(name, key string) *Node {
	return &Node{
		name:     name,
		key:      key,
		children: make(map[string]*Node),
		balances: make(Balances),
	}
}

// Name returns the last component of the account, as first spelled in the journal.
func (n *Node) Name() string { return n.name }

// Balances returns the per-unit balance of the account and its sub-accounts.
func (n *Node) Balances() Balances { return n.balances }

// Balance returns the single-unit balance of the account, nil if nothing was booked.
func (n *Node) Balance() (Amount, error) {
	b, err := n.balances.NilOrSingleUnit()
	if err != nil {
		return Amount{}, fmt.Errorf("account %q: %w", n.name, err)
	}
	return b, nil
}

// Postings returns the postings booked directly to this account.
func (n *Node) Postings() []*Posting { return n.postings }

// HasOwnPostings reports whether postings name this account directly, as
// opposed to only naming its sub-accounts.
func (n *Node) HasOwnPostings() bool { return n.hasOwnPostings }

// Children returns the sub-accounts sorted by canonical name.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child)
	}
	slices.SortFunc(children, func(a, b *Node) int { return strings.Compare(a.key, b.key) })
	return children
}

// Tree is the chart of accounts of a set of transactions, with their balances.
//
// A Tree is built for a single report and is not safe for concurrent booking.
type Tree struct {
	root *Node
}

// NewTree creates the accounts of all the postings of txs, with empty balances.
func NewTree(txs []*Transaction) *Tree {
	t := &Tree{root: newNode("", "")}
	for _, tx := range txs {
		for i := range tx.Postings {
			p := &tx.Postings[i]
			n := t.insert(p.Account)
			n.hasOwnPostings = true
			n.postings = append(n.postings, p)
		}
	}
	return t
}

// NewTreeFromAccounts creates the accounts named in accounts.
func NewTreeFromAccounts(accounts []string) *Tree {
	t := &Tree{root: newNode("", "")}
	for _, account := range accounts {
		t.insert(account).hasOwnPostings = true
	}
	return t
}

// insert walks down the account path, creating the missing nodes, and returns the leaf.
func (t *Tree) insert(account string) *Node {
	path := Canonicalize(account)
	n := t.root
	for i, key := range path.Regular {
		child, ok := n.children[key]
		if !ok {
			child = newNode(path.Original[i], key)
			n.children[key] = child
		}
		n = child
	}
	return n
}

// Roots returns the top level accounts, sorted.
func (t *Tree) Roots() []*Node { return t.root.Children() }

// Find returns the node of account.
func (t *Tree) Find(account string) (*Node, error) {
	nodes, err := t.path(account)
	if err != nil {
		return nil, err
	}
	return nodes[len(nodes)-1], nil
}

// path returns the nodes from the root account down to account.
func (t *Tree) path(account string) ([]*Node, error) {
	regular := Canonicalize(account).Regular
	nodes := make([]*Node, 0, len(regular))
	n := t.root
	for _, key := range regular {
		child, ok := n.children[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, account)
		}
		nodes = append(nodes, child)
		n = child
	}
	return nodes, nil
}

// Book adds the posting's amount to the balance of its account and of all
// the account's ancestors.
func (t *Tree) Book(p *Posting) error {
	nodes, err := t.path(p.Account)
	if err != nil {
		return err
	}
	leaf := nodes[len(nodes)-1]
	if !slices.Contains(leaf.postings, p) {
		leaf.postings = append(leaf.postings, p)
	}
	for _, n := range nodes {
		n.balances.Add(p.Amount)
	}
	return nil
}

// BookTransaction books all the postings of tx.
func (t *Tree) BookTransaction(tx *Transaction) error {
	for i := range tx.Postings {
		if err := t.Book(&tx.Postings[i]); err != nil {
			return err
		}
	}
	return nil
}

// CalculateBalances returns the tree of txs with the postings dated on or
// before asAt booked. A zero asAt books everything.
func CalculateBalances(txs []*Transaction, asAt date.Date) (*Tree, error) {
	t := NewTree(txs)
	for _, tx := range txs {
		if !asAt.IsZero() && tx.Date.After(asAt) {
			continue
		}
		if err := t.BookTransaction(tx); err != nil {
			return nil, err
		}
	}
	return t, nil
}
