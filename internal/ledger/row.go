package ledger

import "math"

// Column header labels. These are the sheet contract: other collaborators
// locate columns by this exact text, so they must never be renamed.
const (
	ColTimestamp    = "Data/Hora"
	ColSubmitterID  = "Telegram ID"
	ColSubmitter    = "Telegram Usuário"
	ColCity         = "Cidade"
	ColName         = "Nome"
	ColAccountID    = "ID da Conta"
	ColPeriod       = "Mês transação"
	ColInitial      = "Transação Inicial"
	ColDeposit      = "Depósito"
	ColWithdraw     = "Saque"
	ColFinal        = "Saldo final"
	ColProfit       = "Ganhos período (USDT)"
	ColDonationUSDT = "Doação 5% (USDT)"
	ColRate         = "Taxa USD/BRL"
	ColDonationBRL  = "Doação 5% (BRL)"
	ColNote         = "Observação"
)

// Header is the full column order for newly created sheets.
var Header = []string{
	ColTimestamp,
	ColSubmitterID,
	ColSubmitter,
	ColCity,
	ColName,
	ColAccountID,
	ColPeriod,
	ColInitial,
	ColDeposit,
	ColWithdraw,
	ColFinal,
	ColProfit,
	ColDonationUSDT,
	ColRate,
	ColDonationBRL,
	ColNote,
}

// Row is one append-only ledger entry. Rows are written once and never
// edited or deleted.
type Row struct {
	Timestamp    string
	SubmitterID  string
	Submitter    string
	City         string
	Name         string
	AccountID    string
	Period       string
	Initial      float64
	Deposit      float64
	Withdraw     float64
	Final        float64
	Profit       float64
	DonationUSDT float64
	Rate         float64
	DonationBRL  float64
	Note         string
}

// Values returns the row in header order, rounded for storage: two decimal
// places for monetary columns, four for the exchange rate.
func (r Row) Values() []interface{} {
	return []interface{}{
		r.Timestamp,
		r.SubmitterID,
		r.Submitter,
		r.City,
		r.Name,
		r.AccountID,
		r.Period,
		round(r.Initial, 2),
		round(r.Deposit, 2),
		round(r.Withdraw, 2),
		round(r.Final, 2),
		round(r.Profit, 2),
		round(r.DonationUSDT, 2),
		round(r.Rate, 4),
		round(r.DonationBRL, 2),
		r.Note,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
