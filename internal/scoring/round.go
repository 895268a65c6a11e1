package scoring

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Round rounds x to the given number of decimal places. The exact binary
// value of x decides the direction; exact halfway values round away from zero.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if isExactTie(x, places) {
		p := math.Pow10(places)
		return math.Round(x*p) / p
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}

func isExactTie(x float64, places int) bool {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 != places+1 || s[len(s)-1] != '5' {
		return false
	}
	dec, ok := new(big.Rat).SetString(s)
	if !ok {
		return false
	}
	return dec.Cmp(new(big.Rat).SetFloat64(x)) == 0
}
