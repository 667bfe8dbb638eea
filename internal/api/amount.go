package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount accepts a JSON number or a numeric string ("12.50"). Strings that do
// not parse become NaN so validation reports them like any other bad amount.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			f = math.NaN()
		}
		*a = Amount(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}
