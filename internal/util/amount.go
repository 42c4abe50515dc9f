package util

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user input into a decimal. Blank or unparseable
// input yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.TrimPrefix(s, "£")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Amount is a request field holding money. It decodes JSON numbers, numeric
// strings, null and blanks without failing; anything that does not parse
// becomes zero. Set reports whether the client supplied a non-blank value.
type Amount struct {
	decimal.Decimal
	Set bool
}

// NewAmount returns a set Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, Set: true}
}

// Or returns the amount when it was supplied and fallback otherwise.
func (a Amount) Or(fallback decimal.Decimal) decimal.Decimal {
	if a.Set {
		return a.Decimal
	}
	return fallback
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = Amount{}
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
		raw = s
	}
	if strings.TrimSpace(raw) == "" {
		*a = Amount{}
		return nil
	}
	*a = Amount{Decimal: ParseAmount(raw), Set: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return a.Decimal.MarshalJSON()
}
