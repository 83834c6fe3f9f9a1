package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/siherrmann/crmfill/model"
)

var (
	currencySymbolPattern = regexp.MustCompile(`[₹$€£]`)
	numericTokenPattern   = regexp.MustCompile(`([\d,]+(?:\.\d+)?)([KkLlcrCR]{0,2})`)
	digitRunPattern       = regexp.MustCompile(`[\d,]{2,}`)

	// FallbackMoneyPattern finds money-like substrings in free text when the
	// recognizer produced no MONEY span: a currency marker followed by digits,
	// or a bare number carrying a multiplier suffix.
	FallbackMoneyPattern = regexp.MustCompile(`(?:₹|INR|\$|€|£)\s*[\d,]+(?:\.\d+)?(?:[KkLl]|[Cc][Rr])?|\d+(?:\.\d+)?\s*(?:[Kk]|[Ll][Kk]?|[Cc][Rr])\b`)
)

// MoneyParser normalizes money-like substrings ("$30K", "₹30K",
// "INR 12,00,000", "30k") into an amount and optional currency symbol.
type MoneyParser struct {
	// CroreMultiplier is applied for the "Cr" suffix. The default preserves
	// the documented value of 1,000,000 even though a crore is 10,000,000;
	// see model.DefaultCroreMultiplier.
	CroreMultiplier float64
}

// DefaultMoneyParser returns a parser with the documented multiplier table.
func DefaultMoneyParser() MoneyParser {
	return MoneyParser{CroreMultiplier: model.DefaultCroreMultiplier}
}

// ParseMoney parses with the default multiplier table.
func ParseMoney(moneyText string) model.MonetaryValue {
	return DefaultMoneyParser().Parse(moneyText)
}

// Parse turns a money-like substring into (amount, currency). It never
// fails: any unparseable part degrades to a nil field. Textual currency
// codes such as "INR" are not recognized as a currency symbol.
func (p MoneyParser) Parse(moneyText string) model.MonetaryValue {
	if moneyText == "" {
		return model.MonetaryValue{}
	}

	s := strings.ReplaceAll(moneyText, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	var currency *string
	if symbol := currencySymbolPattern.FindString(s); symbol != "" {
		currency = &symbol
	}

	// Numeric token with an optional multiplier suffix.
	if m := numericTokenPattern.FindStringSubmatch(s); m != nil {
		numStr := strings.ReplaceAll(m[1], ",", "")
		base, err := strconv.ParseFloat(numStr, 64)
		if err == nil {
			switch strings.ToLower(m[2]) {
			case "k":
				base *= 1_000
			case "l", "lk":
				base *= 100_000
			case "cr":
				base *= p.CroreMultiplier
			}
			return model.MonetaryValue{Amount: &base, Currency: currency}
		}
	}

	// Fallback: first run of at least two digits/commas, no multiplier.
	if m := digitRunPattern.FindString(s); m != "" {
		value, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			return model.MonetaryValue{Currency: currency}
		}
		return model.MonetaryValue{Amount: &value, Currency: currency}
	}

	return model.MonetaryValue{Currency: currency}
}
