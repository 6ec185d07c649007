package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is a menu price in the restaurant's currency. The static catalog
// and older persisted carts carry prices as decimal strings ("7.00"), so
// decoding accepts both forms and normalizes to a number at the boundary.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", str, err)
		}
		*p = Price(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid price %s: %w", s, err)
	}
	*p = Price(v)
	return nil
}

func (p Price) Float64() float64 {
	return float64(p)
}

// Round2 rounds to two decimal places for display. Intermediate totals keep
// full precision; rounding happens only at the serialization edge.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
