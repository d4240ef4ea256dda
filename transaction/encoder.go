package transaction

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Type prefixes that precede registered concrete types in the binary form.
var (
	prefixStdTx       = []byte{0xF0, 0x62, 0x5D, 0xEE}
	prefixPubKey      = []byte{0xEB, 0x5A, 0xE9, 0x87}
	prefixSend        = []byte{0x2A, 0x2C, 0x87, 0xFA}
	prefixNewOrder    = []byte{0xCE, 0x6D, 0xC0, 0x43}
	prefixCancelOrder = []byte{0x16, 0x6E, 0x68, 0x1B}
	prefixFreeze      = []byte{0xE7, 0x74, 0xB3, 0x2D}
	prefixUnfreeze    = []byte{0x65, 0x15, 0xFF, 0x0D}
	prefixVote        = []byte{0xA1, 0xCA, 0xDD, 0x36}
)

// encoder appends proto3 fields. Zero scalars are omitted, embedded
// messages are always written.
type encoder []byte

func (e *encoder) bytes(num protowire.Number, b []byte) {
	if len(b) == 0 {
		return
	}
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendBytes(*e, b)
}

func (e *encoder) string(num protowire.Number, s string) {
	if s == "" {
		return
	}
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendString(*e, s)
}

func (e *encoder) int64(num protowire.Number, v int64) {
	if v == 0 {
		return
	}
	*e = protowire.AppendTag(*e, num, protowire.VarintType)
	*e = protowire.AppendVarint(*e, uint64(v))
}

func (e *encoder) message(num protowire.Number, b []byte) {
	*e = protowire.AppendTag(*e, num, protowire.BytesType)
	*e = protowire.AppendBytes(*e, b)
}

// withPrefix returns prefix||body in a fresh slice.
func withPrefix(prefix []byte, body []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(body))
	out = append(out, prefix...)
	return append(out, body...)
}

// lengthPrefixed frames b with its uvarint length.
func lengthPrefixed(b []byte) []byte {
	out := protowire.AppendVarint(make([]byte, 0, len(b)+protowire.SizeVarint(uint64(len(b)))), uint64(len(b)))
	return append(out, b...)
}
