package currency

import "github.com/shopspring/decimal"

// Format: tutarı sabit "123.45 CUP" biçiminde döner. Uygulamanın tek para
// birimi CUP'tur, yerelleştirme yapılmaz.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " CUP"
}
