package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/ledger/date"
)

// verifyKeyword starts a balance assertion line.
const verifyKeyword = "VERIFY-BALANCE"

// MaxLineLength is the longest journal line DecodeJournal reads.
const MaxLineLength = 1 << 20

// DecodeOptions control how a journal is decoded.
type DecodeOptions struct {
	// Unit is attached to every amount read. Empty means DefaultUnit.
	Unit string
	// AdjustSigns multiplies every amount by the sign of its account root, for
	// journals written in the debit/credit convention.
	AdjustSigns bool
}

// DecodeJournal reads a whole journal.
//
// Blank lines and comments ('#' or '%') separate transactions. The first line
// of a transaction is a date followed by a description, the next ones are
// postings "<account> <amount>". A VERIFY-BALANCE line may appear anywhere.
//
// Any error aborts decoding and is returned as a *LineError.
func DecodeJournal(r io.Reader, opts DecodeOptions) (*Journal, error) {
	if opts.Unit == "" {
		opts.Unit = DefaultUnit
	}
	d := decoder{opts: opts, journal: new(Journal)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLength)
	line := 0
	for scanner.Scan() {
		line++
		if err := d.decodeLine(line, scanner.Text()); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		// the scanner stops on the line it could not read.
		return nil, &LineError{Line: line + 1, Err: fmt.Errorf("reading journal: %w", err)}
	}
	d.flush()
	return d.journal, nil
}

// decoder holds the state between journal lines.
type decoder struct {
	opts    DecodeOptions
	journal *Journal
	current *Transaction // nil when no transaction is open
}

func (d *decoder) decodeLine(line int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "%") {
		d.flush()
		return nil
	}

	fields := strings.Fields(text)
	if strings.EqualFold(fields[0], verifyKeyword) {
		v, err := d.decodeVerification(line, fields)
		if err != nil {
			return err
		}
		d.journal.Verifications = append(d.journal.Verifications, v)
		return nil
	}

	if d.current == nil {
		return d.decodeHeader(line, text)
	}
	return d.decodePosting(line, fields)
}

func (d *decoder) decodeVerification(line int, fields []string) (Verification, error) {
	if len(fields) != 4 {
		return Verification{}, fmt.Errorf("%w: want \"%s <date> <account> <amount>\", got %d arguments", ErrMalformedVerify, verifyKeyword, len(fields)-1)
	}
	on, err := date.Parse(fields[1])
	if err != nil {
		return Verification{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	account := fields[2]
	if err := ValidateAccount(account); err != nil {
		return Verification{}, err
	}
	amount, err := d.parseAmount(account, fields[3])
	if err != nil {
		return Verification{}, err
	}
	return Verification{Date: on, Account: account, Amount: amount, Line: line}, nil
}

func (d *decoder) decodeHeader(line int, text string) error {
	token := strings.Fields(text)[0]
	description := text[len(token):]
	on, err := date.Parse(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	d.current = &Transaction{
		Date:        on,
		Description: strings.TrimSpace(description),
		Line:        line,
	}
	return nil
}

func (d *decoder) decodePosting(line int, fields []string) error {
	account := fields[0]
	if err := ValidateAccount(account); err != nil {
		return err
	}
	if len(fields) < 2 {
		return fmt.Errorf("%w: missing amount for account %q", ErrInvalidAmount, account)
	}
	amount, err := d.parseAmount(account, strings.Join(fields[1:], ""))
	if err != nil {
		return err
	}
	d.current.Postings = append(d.current.Postings, Posting{
		Account: account,
		Amount:  amount,
		Line:    line,
	})
	return nil
}

func (d *decoder) parseAmount(account, text string) (Amount, error) {
	if d.opts.AdjustSigns {
		return ParseAmountSigned(d.opts.Unit, account, text)
	}
	return ParseAmount(d.opts.Unit, text)
}

// flush closes the open transaction, if any.
func (d *decoder) flush() {
	tx := d.current
	if tx == nil {
		return
	}
	id := len(d.journal.Transactions)
	for i := range tx.Postings {
		tx.Postings[i].Date = tx.Date
		tx.Postings[i].Description = tx.Description
		tx.Postings[i].TransactionID = id
	}
	d.journal.Transactions = append(d.journal.Transactions, tx)
	d.current = nil
}
