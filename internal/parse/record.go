package parse

import (
	"strings"
)

// Record is one normalized financial activity report. Numeric fields default
// to 0 and string fields to "" when the input does not supply them; parsing
// never fails. An empty Period is a validation problem for the caller, not
// for the parser.
type Record struct {
	City      string
	Name      string
	AccountID string
	Period    string
	Initial   float64
	Deposit   float64
	Withdraw  float64
	Final     float64
	Note      string
}

type field int

const (
	fieldCity field = iota
	fieldName
	fieldAccountID
	fieldPeriod
	fieldInitial
	fieldDeposit
	fieldWithdraw
	fieldFinal
	fieldNote
)

// fieldAliases maps every accepted key label (lower-cased, trimmed) to its
// canonical field. Both input syntaxes consult the same table.
var fieldAliases = map[string]field{
	"cidade":            fieldCity,
	"nome":              fieldName,
	"id":                fieldAccountID,
	"id da conta":       fieldAccountID,
	"mes":               fieldPeriod,
	"mês":               fieldPeriod,
	"mês transação":     fieldPeriod,
	"mes transação":     fieldPeriod,
	"inicial":           fieldInitial,
	"transação inicial": fieldInitial,
	"transacao inicial": fieldInitial,
	"deposito":          fieldDeposit,
	"depósito":          fieldDeposit,
	"saque":             fieldWithdraw,
	"final":             fieldFinal,
	"saldo final":       fieldFinal,
	"obs":               fieldNote,
	"observacao":        fieldNote,
	"observação":        fieldNote,
}

// ParseRecord converts a raw text block into a Record. Two syntaxes are
// accepted and selected by one rule: text containing "=" that is either
// semicolon-separated or a single line is inline syntax
// (cidade=Uberaba; nome=João; ...); everything else is line syntax
// (Cidade: Uberaba, one field per line).
func ParseRecord(text string) Record {
	text = strings.TrimSpace(text)

	if strings.Contains(text, "=") && (strings.Contains(text, ";") || !strings.Contains(text, "\n")) {
		return parseInline(text)
	}
	return parseLines(text)
}

func parseInline(text string) Record {
	var rec Record
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" || !strings.Contains(part, "=") {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		rec.apply(key, value)
	}
	return rec
}

func parseLines(text string) Record {
	var rec Record
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		key, value, _ := strings.Cut(line, ":")
		rec.apply(key, value)
	}
	return rec
}

func (r *Record) apply(key, value string) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return
	}
	value = strings.TrimSpace(value)

	switch f {
	case fieldCity:
		r.City = value
	case fieldName:
		r.Name = value
	case fieldAccountID:
		r.AccountID = value
	case fieldPeriod:
		r.Period = value
	case fieldInitial:
		r.Initial = ToFloat(value)
	case fieldDeposit:
		r.Deposit = ToFloat(value)
	case fieldWithdraw:
		r.Withdraw = ToFloat(value)
	case fieldFinal:
		r.Final = ToFloat(value)
	case fieldNote:
		r.Note = value
	}
}
