// Package transaction builds, signs and encodes Binance Chain transactions.
//
// A transaction is signed over the canonical JSON form of its StdSignMsg and
// broadcast in the length-prefixed binary form of its StdTx.
package transaction

import (
	"errors"
	"fmt"

	"github.com/wally-yu/binance-dex/crypto"
)

// Msg is a single operation carried by a transaction.
type Msg interface {
	// Type is the message route name, e.g. "send" or "orderNew".
	Type() string
	// ValidateBasic performs stateless checks.
	ValidateBasic() error
	// SignDoc returns the value whose JSON form is signed. Its fields must
	// marshal in sorted key order.
	SignDoc() interface{}
	// Encode returns the type prefix followed by the binary fields.
	Encode() ([]byte, error)
}

// Order sides.
const (
	SideBuy  int8 = 1
	SideSell int8 = 2
)

// OrderTypeLimit is the only order type the chain accepts.
const OrderTypeLimit int8 = 2

// Time in force values.
const (
	TimeInForceGTE int8 = 1
	TimeInForceIOC int8 = 3
)

// Vote options.
const (
	VoteYes        int8 = 1
	VoteAbstain    int8 = 2
	VoteNo         int8 = 3
	VoteNoWithVeto int8 = 4
)

var (
	// ErrNoMsgs is returned when signing or encoding a transaction without
	// messages.
	ErrNoMsgs = errors.New("transaction has no messages")

	errEmptySymbol = errors.New("symbol is empty")
)

// SideFromString parses "buy" or "sell".
func SideFromString(s string) (int8, error) {
	switch s {
	case "buy", "BUY", "1":
		return SideBuy, nil
	case "sell", "SELL", "2":
		return SideSell, nil
	}
	return 0, fmt.Errorf("unknown order side %q", s)
}

// TimeInForceFromString parses "GTE" or "IOC".
func TimeInForceFromString(s string) (int8, error) {
	switch s {
	case "GTE", "gte", "1":
		return TimeInForceGTE, nil
	case "IOC", "ioc", "3":
		return TimeInForceIOC, nil
	}
	return 0, fmt.Errorf("unknown time in force %q", s)
}

// VoteOptionFromString parses a vote option name.
func VoteOptionFromString(s string) (int8, error) {
	switch s {
	case "yes", "Yes", "1":
		return VoteYes, nil
	case "abstain", "Abstain", "2":
		return VoteAbstain, nil
	case "no", "No", "3":
		return VoteNo, nil
	case "no_with_veto", "NoWithVeto", "veto", "4":
		return VoteNoWithVeto, nil
	}
	return 0, fmt.Errorf("unknown vote option %q", s)
}

// VoteOptionName returns the name the governance codec uses for option in
// JSON, or "" for an unknown option.
func VoteOptionName(option int8) string {
	switch option {
	case VoteYes:
		return "Yes"
	case VoteAbstain:
		return "Abstain"
	case VoteNo:
		return "No"
	case VoteNoWithVeto:
		return "NoWithVeto"
	}
	return ""
}

// GenerateOrderID returns the id of the order placed by sender with its
// current account sequence: upper hex address, dash, sequence+1.
func GenerateOrderID(sender crypto.AccAddress, sequence int64) string {
	return fmt.Sprintf("%X-%d", []byte(sender), sequence+1)
}

func decodeAddress(field, address string) (crypto.AccAddress, error) {
	_, raw, err := crypto.DecodeAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return raw, nil
}
