package dto

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formatea montos con separador de miles estilo 1,234.56.
// Solo presentación: la precisión completa se conserva en storage y dominio.
var printer = message.NewPrinter(language.English)

// FormatMoney redondea a 2 decimales y aplica separador de miles.
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
