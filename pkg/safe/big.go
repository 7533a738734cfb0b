// Package safe provides helpers for safe numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// BigUint64 converts a ledger integer to uint64, rejecting nil, negative
// and out-of-range values. Contract counters (project ids, token ids,
// minted counts) are uint256 on chain but always fit uint64 in practice.
func BigUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil ledger integer")
	}
	if v.Sign() < 0 {
		return 0, fmt.Errorf("ledger integer %s is negative", v)
	}
	if v.Cmp(maxUint64) > 0 {
		return 0, fmt.Errorf("ledger integer %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}
