package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Human readable address prefixes.
const (
	HRPMainnet = "bnb"
	HRPTestnet = "tbnb"
)

// AddressLength is the size of a decoded account address.
const AddressLength = 20

// AccAddress is the raw 20-byte account address, RIPEMD160(SHA256(pubkey)).
type AccAddress []byte

// String returns the bech32 form of the address with the given prefix.
func (a AccAddress) String(hrp string) (string, error) {
	conv, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	return bech32.Encode(hrp, conv)
}

// AddressFromPubKey derives the bech32 address of a compressed public key.
func AddressFromPubKey(pubKey []byte, hrp string) (string, error) {
	return AccAddress(btcutil.Hash160(pubKey)).String(hrp)
}

// DecodeAddress decodes a bech32 account address into its prefix and raw
// bytes.
func DecodeAddress(address string) (string, AccAddress, error) {
	hrp, data, err := bech32.Decode(address)
	if err != nil {
		return "", nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	if len(conv) != AddressLength {
		return "", nil, fmt.Errorf("invalid address %q: expected %d bytes, got %d", address, AddressLength, len(conv))
	}
	return hrp, conv, nil
}

// ValidateAddress checks that address is a well-formed account address with
// the expected prefix.
func ValidateAddress(address, hrp string) error {
	got, _, err := DecodeAddress(address)
	if err != nil {
		return err
	}
	if got != hrp {
		return fmt.Errorf("address %s has prefix %q, expected %q", address, got, hrp)
	}
	return nil
}
