package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value as it appears in stored documents. Old backups
// and spreadsheet-sourced records sometimes carry amounts as strings ("150",
// "150.5") or garbage; anything non-numeric decodes as 0 so that aggregation
// never produces NaN.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}
