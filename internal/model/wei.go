package model

import (
	"fmt"
	"math/big"
	"strings"
)

// Ledger amounts stay as wei (*big.Int) everywhere inside the core.
// Decimal ether strings exist only at presentation boundaries.

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatEther renders a wei amount as a decimal ether string without
// trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0"
	}
	s := new(big.Rat).SetFrac(wei, weiPerEther).FloatString(18)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseEther converts a decimal ether string into wei. Amounts with
// sub-wei precision are rejected rather than rounded.
func ParseEther(s string) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid ether amount %q", s)
	}
	wei := new(big.Rat).Mul(r, new(big.Rat).SetInt(weiPerEther))
	if !wei.IsInt() {
		return nil, fmt.Errorf("ether amount %q has sub-wei precision", s)
	}
	return new(big.Int).Set(wei.Num()), nil
}
