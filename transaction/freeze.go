package transaction

import "fmt"

// FreezeMsg locks part of a token balance.
type FreezeMsg struct {
	Amount int64  `json:"amount"`
	From   string `json:"from"`
	Symbol string `json:"symbol"`
}

// UnfreezeMsg releases a frozen balance.
type UnfreezeMsg struct {
	Amount int64  `json:"amount"`
	From   string `json:"from"`
	Symbol string `json:"symbol"`
}

// NewFreeze returns a freeze message.
func NewFreeze(from, symbol string, amount int64) FreezeMsg {
	return FreezeMsg{Amount: amount, From: from, Symbol: symbol}
}

// NewUnfreeze returns an unfreeze message.
func NewUnfreeze(from, symbol string, amount int64) UnfreezeMsg {
	return UnfreezeMsg{Amount: amount, From: from, Symbol: symbol}
}

// Type implements Msg.
func (m FreezeMsg) Type() string { return "tokensFreeze" }

// ValidateBasic implements Msg.
func (m FreezeMsg) ValidateBasic() error {
	return validateFrozen("freeze", m.From, m.Symbol, m.Amount)
}

// SignDoc implements Msg.
func (m FreezeMsg) SignDoc() interface{} { return m }

// Encode implements Msg.
func (m FreezeMsg) Encode() ([]byte, error) {
	return encodeFrozen(prefixFreeze, m.From, m.Symbol, m.Amount)
}

// Type implements Msg.
func (m UnfreezeMsg) Type() string { return "tokensUnfreeze" }

// ValidateBasic implements Msg.
func (m UnfreezeMsg) ValidateBasic() error {
	return validateFrozen("unfreeze", m.From, m.Symbol, m.Amount)
}

// SignDoc implements Msg.
func (m UnfreezeMsg) SignDoc() interface{} { return m }

// Encode implements Msg.
func (m UnfreezeMsg) Encode() ([]byte, error) {
	return encodeFrozen(prefixUnfreeze, m.From, m.Symbol, m.Amount)
}

func validateFrozen(kind, from, symbol string, amount int64) error {
	if _, err := decodeAddress(kind+" from", from); err != nil {
		return err
	}
	if symbol == "" {
		return errSymbol(kind, errEmptySymbol)
	}
	if amount <= 0 {
		return fmt.Errorf("%s: non-positive amount %d", kind, amount)
	}
	return nil
}

func encodeFrozen(prefix []byte, from, symbol string, amount int64) ([]byte, error) {
	raw, err := decodeAddress("from", from)
	if err != nil {
		return nil, err
	}
	var e encoder
	e.bytes(1, raw)
	e.string(2, symbol)
	e.int64(3, amount)
	return withPrefix(prefix, e), nil
}
