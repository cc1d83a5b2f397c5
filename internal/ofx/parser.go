// Package ofx parses OFX/QFX bank statement files into neutral statement
// entries that the import command maps onto ledger transactions.
package ofx

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/bilancio-app/bilancio/internal/ledger"
)

// Entry is one statement line. Amount is always positive; Credit tells
// whether the bank credited (income) or debited (expense) the account.
type Entry struct {
	Date        ledger.Date
	Amount      float64
	Credit      bool
	Description string
	AccountRef  string // the bank's account id in the statement
	FiTID       string
}

// Hash returns a stable digest for duplicate suppression across imports.
func (e Entry) Hash() string {
	data := fmt.Sprintf("%s:%.2f:%t:%s:%s",
		e.Date.String(), e.Amount, e.Credit, e.Description, e.AccountRef)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(data)))
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in real-world OFX files.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values (should be INFO, WARN, or ERROR).
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML-style files sometimes drop the closing angle bracket on a tag
	// that ends the line.
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX file and returns its statement entries.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []Entry
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, tx := range stmt.BankTranList.Transactions {
				entries = append(entries, p.convert(tx, string(stmt.BankAcctFrom.AcctID)))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, tx := range stmt.BankTranList.Transactions {
				entries = append(entries, p.convert(tx, string(stmt.CCAcctFrom.AcctID)))
			}
		}
	}

	slog.Info("parsed OFX file",
		"entries", len(entries),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return entries, nil
}

// convert maps an OFX transaction to a statement entry. OFX uses negative
// amounts for debits; the entry stores the absolute value plus direction
// and the date truncated to a calendar day.
func (p *Parser) convert(tx ofxgo.Transaction, accountRef string) Entry {
	amount, _ := tx.TrnAmt.Float64()
	credit := amount >= 0
	if amount < 0 {
		amount = -amount
	}

	posted := tx.DtPosted.Time
	return Entry{
		Date:        ledger.NewDate(posted.Year(), posted.Month(), posted.Day()),
		Amount:      amount,
		Credit:      credit,
		Description: description(tx),
		AccountRef:  accountRef,
		FiTID:       string(tx.FiTID),
	}
}

// description picks the cleanest label the statement offers.
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && name == "" {
		return strings.TrimSpace(string(tx.Memo))
	}
	return name
}
