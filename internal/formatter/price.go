package formatter

import (
	"strings"

	"github.com/joefazee/qrmenu/models"
	"github.com/shopspring/decimal"
)

// CurrencySymbol is the Turkish lira sign shown next to menu prices.
const CurrencySymbol = "₺"

var arabicIndic = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// FormatPrice rounds price to a whole number, half up, and writes it with
// Arabic-Indic digits when lang is Arabic.
func FormatPrice(price decimal.Decimal, lang models.Language) string {
	s := price.Round(0).String()
	if lang == models.LanguageArabic {
		return arabicIndic.Replace(s)
	}
	return s
}

// DisplayPrice adds the currency sign on the reading side of the price: after
// the number for right-to-left languages, before it otherwise.
func DisplayPrice(price decimal.Decimal, lang models.Language) string {
	s := FormatPrice(price, lang)
	if lang.IsRTL() {
		return s + CurrencySymbol
	}
	return CurrencySymbol + s
}
