package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// AccountBalance is the JSON form of an account and its sub-accounts.
type AccountBalance struct {
	Account  string           `json:"account"` // canonical name, e.g. "EXPENSES:CHARITY"
	Path     string           `json:"path"`    // name as first spelled in the journal
	Balance  string           `json:"balance"`
	Quantity int64            `json:"quantity"` // balance in hundredths
	Unit     string           `json:"unit,omitempty"`
	Children []AccountBalance `json:"children,omitempty"`
}

// ExportBalances returns the balances of the accounts of tree, or of the
// given accounts only, with all their sub-accounts.
func ExportBalances(tree *Tree, accounts []string) ([]AccountBalance, error) {
	if len(accounts) == 0 {
		return exportNodes(tree.Roots(), "", "")
	}
	var result []AccountBalance
	for _, account := range accounts {
		nodes, err := tree.path(account)
		if err != nil {
			return nil, err
		}
		var key, path string
		for _, n := range nodes[:len(nodes)-1] {
			key += n.key + AccountSeparator
			path += n.Name() + AccountSeparator
		}
		exported, err := exportNodes(nodes[len(nodes)-1:], key, path)
		if err != nil {
			return nil, err
		}
		result = append(result, exported...)
	}
	return result, nil
}

func exportNodes(nodes []*Node, keyPrefix, pathPrefix string) ([]AccountBalance, error) {
	var result []AccountBalance
	for _, n := range nodes {
		balance, err := n.Balance()
		if err != nil {
			return nil, err
		}
		a := AccountBalance{
			Account:  keyPrefix + n.key,
			Path:     pathPrefix + n.Name(),
			Balance:  balance.String(),
			Quantity: balance.Quantity(),
			Unit:     balance.Unit(),
		}
		a.Children, err = exportNodes(n.Children(), a.Account+AccountSeparator, a.Path+AccountSeparator)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// MarshalJSON writes the posting as {"account", "amount", "quantity", "unit"}.
func (p Posting) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("account", p.Account).amount(p.Amount)
	return w.MarshalJSON()
}

// MarshalJSON writes the transaction as {"date", "description", "line", "postings"}.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date).
		Optional("description", t.Description).
		Optional("line", t.Line).
		Append("postings", t.Postings)
	return w.MarshalJSON()
}

func verificationJSON(v Verification) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("verify", v.Date).
		Append("account", v.Account).
		amount(v.Amount).
		Optional("line", v.Line)
	return w.MarshalJSON()
}

// EncodeJSONL writes the journal as JSON lines: one object per transaction,
// then one per balance verification, the latter keyed by "verify".
func EncodeJSONL(w io.Writer, j *Journal) error {
	out := bufio.NewWriter(w)
	for _, tx := range j.Transactions {
		line, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("line %d: %w", tx.Line, err)
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	for _, v := range j.Verifications {
		line, err := verificationJSON(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", v.Line, err)
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	return out.Flush()
}

// SelectJSON evaluates the JSONPath expression path against the JSON form of v.
func SelectJSON(v any, path string) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	return result, nil
}

// EncodeJSON writes v as indented JSON, filtered by path if not empty.
func EncodeJSON(w io.Writer, v any, path string) error {
	if path != "" {
		var err error
		if v, err = SelectJSON(v, path); err != nil {
			return err
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
