package finance

import "math"

// DonationShare is the fraction of positive period profit owed as donation.
const DonationShare = 0.05

// CalcProfit derives the period profit and the donation base from the four
// reported balances. Profit may be negative; the donation never is, since
// only net gains carry the obligation.
func CalcProfit(initial, deposit, withdraw, final float64) (profit, donation float64) {
	profit = final + withdraw - deposit - initial
	donation = math.Max(0, profit*DonationShare)
	return profit, donation
}

// ConvertDonation applies an externally fetched exchange rate to the
// donation base.
func ConvertDonation(donation, rate float64) float64 {
	return donation * rate
}
