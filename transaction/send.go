package transaction

import (
	"errors"
	"fmt"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// Coin is an amount of one denomination in on-chain units.
type Coin struct {
	Amount int64  `json:"amount"`
	Denom  string `json:"denom"`
}

// Coins is a list of coins sorted by denomination.
type Coins []Coin

// NewCoins returns a sorted copy of coins.
func NewCoins(coins ...Coin) Coins {
	res := make(Coins, len(coins))
	copy(res, coins)
	sort.Slice(res, func(i, j int) bool { return res[i].Denom < res[j].Denom })
	return res
}

// Validate checks that coins are positive, sorted and unique.
func (cs Coins) Validate() error {
	if len(cs) == 0 {
		return errors.New("no coins")
	}
	for i, c := range cs {
		if c.Denom == "" {
			return errors.New("empty denomination")
		}
		if c.Amount <= 0 {
			return fmt.Errorf("non-positive amount %d of %s", c.Amount, c.Denom)
		}
		if i > 0 && cs[i-1].Denom >= c.Denom {
			return fmt.Errorf("coins are not sorted or have duplicate %s", c.Denom)
		}
	}
	return nil
}

func (cs Coins) encodeInto(e *encoder, num protowire.Number) {
	for _, c := range cs {
		var ce encoder
		ce.string(1, c.Denom)
		ce.int64(2, c.Amount)
		e.message(num, ce)
	}
}

// Input is a debited account.
type Input struct {
	Address string `json:"address"`
	Coins   Coins  `json:"coins"`
}

// Output is a credited account.
type Output struct {
	Address string `json:"address"`
	Coins   Coins  `json:"coins"`
}

// Transfer is one recipient of a SendMsg.
type Transfer struct {
	To    string
	Coins Coins
}

// SendMsg moves coins between accounts.
type SendMsg struct {
	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
}

// NewSendMsg builds a transfer from one account to one or more recipients.
// The single input carries the sum of all outputs.
func NewSendMsg(from string, transfers ...Transfer) SendMsg {
	totals := make(map[string]int64)
	msg := SendMsg{Outputs: make([]Output, 0, len(transfers))}
	for _, t := range transfers {
		coins := NewCoins(t.Coins...)
		for _, c := range coins {
			totals[c.Denom] += c.Amount
		}
		msg.Outputs = append(msg.Outputs, Output{Address: t.To, Coins: coins})
	}
	in := make([]Coin, 0, len(totals))
	for denom, amount := range totals {
		in = append(in, Coin{Denom: denom, Amount: amount})
	}
	msg.Inputs = []Input{{Address: from, Coins: NewCoins(in...)}}
	return msg
}

// Type implements Msg.
func (m SendMsg) Type() string { return "send" }

// ValidateBasic implements Msg.
func (m SendMsg) ValidateBasic() error {
	if len(m.Inputs) == 0 {
		return errors.New("send: no inputs")
	}
	if len(m.Outputs) == 0 {
		return errors.New("send: no outputs")
	}
	balance := make(map[string]int64)
	for _, in := range m.Inputs {
		if _, err := decodeAddress("send input", in.Address); err != nil {
			return err
		}
		if err := in.Coins.Validate(); err != nil {
			return fmt.Errorf("send input %s: %w", in.Address, err)
		}
		for _, c := range in.Coins {
			balance[c.Denom] += c.Amount
		}
	}
	for _, out := range m.Outputs {
		if _, err := decodeAddress("send output", out.Address); err != nil {
			return err
		}
		if err := out.Coins.Validate(); err != nil {
			return fmt.Errorf("send output %s: %w", out.Address, err)
		}
		for _, c := range out.Coins {
			balance[c.Denom] -= c.Amount
		}
	}
	for denom, v := range balance {
		if v != 0 {
			return fmt.Errorf("send: inputs and outputs of %s don't match", denom)
		}
	}
	return nil
}

// SignDoc implements Msg.
func (m SendMsg) SignDoc() interface{} { return m }

// Encode implements Msg.
func (m SendMsg) Encode() ([]byte, error) {
	var e encoder
	for _, in := range m.Inputs {
		b, err := encodeInputOutput(in.Address, in.Coins)
		if err != nil {
			return nil, err
		}
		e.message(1, b)
	}
	for _, out := range m.Outputs {
		b, err := encodeInputOutput(out.Address, out.Coins)
		if err != nil {
			return nil, err
		}
		e.message(2, b)
	}
	return withPrefix(prefixSend, e), nil
}

func encodeInputOutput(address string, coins Coins) ([]byte, error) {
	raw, err := decodeAddress("send", address)
	if err != nil {
		return nil, err
	}
	var e encoder
	e.bytes(1, raw)
	coins.encodeInto(&e, 2)
	return e, nil
}
