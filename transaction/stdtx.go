package transaction

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	json "github.com/goccy/go-json"
)

// Signer produces 64-byte signatures over sha256 of a message.
type Signer interface {
	Sign(msg []byte) ([]byte, error)
	PubKey() []byte
}

// StdSignMsg is everything covered by a transaction signature.
type StdSignMsg struct {
	ChainID       string
	AccountNumber int64
	Sequence      int64
	Memo          string
	Source        int64
	Msgs          []Msg
	Data          []byte
}

// signDoc fields are declared in sorted key order.
type signDoc struct {
	AccountNumber string        `json:"account_number"`
	ChainID       string        `json:"chain_id"`
	Data          []byte        `json:"data"`
	Memo          string        `json:"memo"`
	Msgs          []interface{} `json:"msgs"`
	Sequence      string        `json:"sequence"`
	Source        string        `json:"source"`
}

// Bytes returns the canonical JSON form that is signed.
func (m StdSignMsg) Bytes() ([]byte, error) {
	if len(m.Msgs) == 0 {
		return nil, ErrNoMsgs
	}
	doc := signDoc{
		AccountNumber: strconv.FormatInt(m.AccountNumber, 10),
		ChainID:       m.ChainID,
		Memo:          m.Memo,
		Msgs:          make([]interface{}, 0, len(m.Msgs)),
		Sequence:      strconv.FormatInt(m.Sequence, 10),
		Source:        strconv.FormatInt(m.Source, 10),
	}
	if len(m.Data) != 0 {
		doc.Data = m.Data
	}
	for _, msg := range m.Msgs {
		doc.Msgs = append(doc.Msgs, msg.SignDoc())
	}
	return json.Marshal(doc)
}

// ValidateBasic checks the chain id and every message.
func (m StdSignMsg) ValidateBasic() error {
	if len(m.Msgs) == 0 {
		return ErrNoMsgs
	}
	if m.ChainID == "" {
		return errors.New("chain id is empty")
	}
	if m.AccountNumber < 0 || m.Sequence < 0 {
		return fmt.Errorf("negative account number %d or sequence %d", m.AccountNumber, m.Sequence)
	}
	for _, msg := range m.Msgs {
		if err := msg.ValidateBasic(); err != nil {
			return fmt.Errorf("%s: %w", msg.Type(), err)
		}
	}
	return nil
}

// StdSignature is a signature with the key and account state it was made
// with.
type StdSignature struct {
	PubKey        []byte
	Signature     []byte
	AccountNumber int64
	Sequence      int64
}

func (s StdSignature) encode() []byte {
	pub := withPrefix(prefixPubKey, lengthPrefixed(s.PubKey))
	var e encoder
	e.bytes(1, pub)
	e.bytes(2, s.Signature)
	e.int64(3, s.AccountNumber)
	e.int64(4, s.Sequence)
	return e
}

// StdTx is a signed transaction.
type StdTx struct {
	Msgs       []Msg
	Signatures []StdSignature
	Memo       string
	Source     int64
	Data       []byte
}

// Encode returns the broadcast form: uvarint length, StdTx prefix, fields.
func (tx StdTx) Encode() ([]byte, error) {
	if len(tx.Msgs) == 0 {
		return nil, ErrNoMsgs
	}
	var e encoder
	for _, msg := range tx.Msgs {
		b, err := msg.Encode()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", msg.Type(), err)
		}
		e.message(1, b)
	}
	for _, sig := range tx.Signatures {
		e.message(2, sig.encode())
	}
	e.string(3, tx.Memo)
	e.int64(4, tx.Source)
	e.bytes(5, tx.Data)
	return lengthPrefixed(withPrefix(prefixStdTx, e)), nil
}

// Sign signs msg with signer and returns the transaction and its broadcast
// bytes.
func Sign(signer Signer, msg StdSignMsg) (*StdTx, []byte, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, nil, err
	}
	signBytes, err := msg.Bytes()
	if err != nil {
		return nil, nil, fmt.Errorf("can't build sign bytes: %w", err)
	}
	sig, err := signer.Sign(signBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("can't sign transaction: %w", err)
	}
	tx := &StdTx{
		Msgs: msg.Msgs,
		Signatures: []StdSignature{{
			PubKey:        signer.PubKey(),
			Signature:     sig,
			AccountNumber: msg.AccountNumber,
			Sequence:      msg.Sequence,
		}},
		Memo:   msg.Memo,
		Source: msg.Source,
		Data:   msg.Data,
	}
	raw, err := tx.Encode()
	if err != nil {
		return nil, nil, err
	}
	return tx, raw, nil
}

// Hash returns the upper-case hex sha256 of encoded transaction bytes, the
// form used for transaction lookups.
func Hash(txBytes []byte) string {
	return strings.ToUpper(hex.EncodeToString(chainhash.HashB(txBytes)))
}
