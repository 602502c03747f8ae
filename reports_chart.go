package ledger

import "strings"

// Indent is the indentation added per level of the account hierarchy.
const Indent = "  "

// AccountLine is an account as displayed in a hierarchical report.
type AccountLine struct {
	Depth int    // indentation level
	Name  string // display name, including the collapsed ancestors, e.g. "Expenses:Birthdays"
	Node  *Node
}

// Indented returns the name prefixed by its indentation.
func (l AccountLine) Indented() string { return strings.Repeat(Indent, l.Depth) + l.Name }

// collapse lists the accounts under nodes the way reports display them.
//
// An account with a single sub-account and no postings of its own is not
// displayed, its name prefixes the sub-account's instead. Other accounts are
// displayed, and their sub-accounts one level deeper.
func collapse(nodes []*Node, prefix string, depth int) []AccountLine {
	var lines []AccountLine
	for _, n := range nodes {
		children := n.Children()
		switch {
		case len(children) == 0:
			lines = append(lines, AccountLine{Depth: depth, Name: prefix + n.Name(), Node: n})
		case len(children) == 1 && !n.HasOwnPostings():
			lines = append(lines, collapse(children, prefix+n.Name()+AccountSeparator, depth)...)
		default:
			lines = append(lines, AccountLine{Depth: depth, Name: prefix + n.Name(), Node: n})
			lines = append(lines, collapse(children, "", depth+1)...)
		}
	}
	return lines
}

// AccountLines returns the accounts of tree in display order.
func AccountLines(tree *Tree) []AccountLine { return collapse(tree.Roots(), "", 0) }

// ChartOfAccounts returns the structure of the accounts in tree, one indented
// account per line.
func ChartOfAccounts(tree *Tree) []string {
	var lines []string
	for _, l := range AccountLines(tree) {
		lines = append(lines, l.Indented())
	}
	return lines
}
