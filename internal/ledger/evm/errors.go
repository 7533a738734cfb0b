package evm

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/landgrid/landgrid-backend/internal/ledger"
)

// EIP-1193 code reported by wallet providers when the user dismisses the
// signing prompt.
const userRejectedRequestCode = 4001

func classifyWriteError(method string, err error) error {
	switch {
	case isUserRejection(err):
		return fmt.Errorf("%s: %w", method, ledger.ErrUserRejected)
	case isInsufficientFunds(err):
		return fmt.Errorf("%s: %w", method, ledger.ErrInsufficientFunds)
	case isNetworkError(err):
		return fmt.Errorf("%s: %v: %w", method, err, ledger.ErrNetworkUnavailable)
	default:
		// Node revert reasons are not guaranteed to be human-readable;
		// keep the raw message for the log, classify for the caller.
		return fmt.Errorf("%s: %v: %w", method, err, ledger.ErrContractReverted)
	}
}

func classifyReadError(method string, err error) error {
	if isNetworkError(err) {
		return fmt.Errorf("%s: %v: %w", method, err, ledger.ErrNetworkUnavailable)
	}
	return fmt.Errorf("%s: %w", method, err)
}

func isUserRejection(err error) bool {
	if errors.Is(err, ledger.ErrUserRejected) {
		return true
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedRequestCode {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "user denied") ||
		strings.Contains(msg, "user rejected") ||
		strings.Contains(msg, "request rejected") ||
		strings.Contains(msg, "signing declined")
}

func isInsufficientFunds(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "insufficient funds")
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "client is closed")
}
