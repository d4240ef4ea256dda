package transaction

import (
	"errors"
	"fmt"
)

// NewOrderMsg places a limit order.
type NewOrderMsg struct {
	ID          string `json:"id"`
	OrderType   int8   `json:"ordertype"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Sender      string `json:"sender"`
	Side        int8   `json:"side"`
	Symbol      string `json:"symbol"`
	TimeInForce int8   `json:"timeinforce"`
}

// NewOrder returns a limit order message. The id is derived from the sender
// address and its current sequence.
func NewOrder(sender string, sequence int64, symbol string, side int8, price, quantity int64, tif int8) (NewOrderMsg, error) {
	raw, err := decodeAddress("order sender", sender)
	if err != nil {
		return NewOrderMsg{}, err
	}
	return NewOrderMsg{
		ID:          GenerateOrderID(raw, sequence),
		OrderType:   OrderTypeLimit,
		Price:       price,
		Quantity:    quantity,
		Sender:      sender,
		Side:        side,
		Symbol:      symbol,
		TimeInForce: tif,
	}, nil
}

// Type implements Msg.
func (m NewOrderMsg) Type() string { return "orderNew" }

// ValidateBasic implements Msg.
func (m NewOrderMsg) ValidateBasic() error {
	if _, err := decodeAddress("order sender", m.Sender); err != nil {
		return err
	}
	if m.ID == "" {
		return errors.New("order id is empty")
	}
	if m.Symbol == "" {
		return errSymbol("order", errEmptySymbol)
	}
	if m.Side != SideBuy && m.Side != SideSell {
		return fmt.Errorf("invalid order side %d", m.Side)
	}
	if m.OrderType != OrderTypeLimit {
		return fmt.Errorf("invalid order type %d", m.OrderType)
	}
	if m.TimeInForce != TimeInForceGTE && m.TimeInForce != TimeInForceIOC {
		return fmt.Errorf("invalid time in force %d", m.TimeInForce)
	}
	if m.Price <= 0 {
		return fmt.Errorf("non-positive price %d", m.Price)
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("non-positive quantity %d", m.Quantity)
	}
	return nil
}

// SignDoc implements Msg.
func (m NewOrderMsg) SignDoc() interface{} { return m }

// Encode implements Msg.
func (m NewOrderMsg) Encode() ([]byte, error) {
	sender, err := decodeAddress("order sender", m.Sender)
	if err != nil {
		return nil, err
	}
	var e encoder
	e.bytes(1, sender)
	e.string(2, m.ID)
	e.string(3, m.Symbol)
	e.int64(4, int64(m.OrderType))
	e.int64(5, int64(m.Side))
	e.int64(6, m.Price)
	e.int64(7, m.Quantity)
	e.int64(8, int64(m.TimeInForce))
	return withPrefix(prefixNewOrder, e), nil
}

// CancelOrderMsg cancels an open order by its id.
type CancelOrderMsg struct {
	RefID  string `json:"refid"`
	Sender string `json:"sender"`
	Symbol string `json:"symbol"`
}

// NewCancelOrder returns a cancel message for order refID on symbol.
func NewCancelOrder(sender, symbol, refID string) CancelOrderMsg {
	return CancelOrderMsg{RefID: refID, Sender: sender, Symbol: symbol}
}

// Type implements Msg.
func (m CancelOrderMsg) Type() string { return "orderCancel" }

// ValidateBasic implements Msg.
func (m CancelOrderMsg) ValidateBasic() error {
	if _, err := decodeAddress("cancel sender", m.Sender); err != nil {
		return err
	}
	if m.Symbol == "" {
		return errSymbol("cancel", errEmptySymbol)
	}
	if m.RefID == "" {
		return errors.New("cancel: order id is empty")
	}
	return nil
}

// SignDoc implements Msg.
func (m CancelOrderMsg) SignDoc() interface{} { return m }

// Encode implements Msg.
func (m CancelOrderMsg) Encode() ([]byte, error) {
	sender, err := decodeAddress("cancel sender", m.Sender)
	if err != nil {
		return nil, err
	}
	var e encoder
	e.bytes(1, sender)
	e.string(2, m.Symbol)
	e.string(3, m.RefID)
	return withPrefix(prefixCancelOrder, e), nil
}

func errSymbol(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
