// 为标准模板从类型化输入构建脚本：P2PKH、P2PK、P2SH、裸多签、OP_RETURN、
// P2SH 多签输入与 P2PKH 输入。

package txscript

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// BuildPublicKeyHashOut builds a PUBKEYHASH_OUT script paying to, which may
// be an Address, a PublicKey, or a base58-encoded address string. A
// PublicKey is hashed with Sha256Ripemd160 to obtain the 20-byte payload;
// an Address is read directly via HashBuffer; a string is decoded against
// mainnet parameters as a convenience for callers that only have the
// encoded form on hand.
func BuildPublicKeyHashOut(to interface{}) (*Script, error) {
	hash, err := resolveHash160(to)
	if err != nil {
		return nil, err
	}
	s := Empty()
	for _, op := range []byte{OP_DUP, OP_HASH160} {
		if err := s.AppendOpcode(op); err != nil {
			return nil, err
		}
	}
	if err := s.AppendPush(hash); err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(OP_EQUALVERIFY); err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(OP_CHECKSIG); err != nil {
		return nil, err
	}
	return s, nil
}

func resolveHash160(to interface{}) ([]byte, error) {
	switch v := to.(type) {
	case Address:
		return v.HashBuffer(), nil
	case PublicKey:
		return Sha256Ripemd160(v.ToBuffer()), nil
	case string:
		addr, err := btcutil.DecodeAddress(v, &chaincfg.MainNetParams)
		if err != nil {
			return nil, scriptError(ErrInvalidArgument, "invalid address string: "+err.Error())
		}
		return WrapAddress(addr).HashBuffer(), nil
	default:
		return nil, scriptError(ErrInvalidArgument, fmt.Sprintf("unsupported address type %T", to))
	}
}

// BuildPublicKeyOut builds a PUBKEY_OUT script: push(pubkey), OP_CHECKSIG.
func BuildPublicKeyOut(pubkey PublicKey) (*Script, error) {
	s := Empty()
	if err := s.AppendPush(pubkey.ToBuffer()); err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(OP_CHECKSIG); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildScriptHashOut builds a SCRIPTHASH_OUT script wrapping redeemScript:
// OP_HASH160, push(sha256ripemd160(serialize(redeemScript))), OP_EQUAL.
func BuildScriptHashOut(redeemScript *Script) (*Script, error) {
	hash := Sha256Ripemd160(redeemScript.Bytes())
	s := Empty()
	if err := s.AppendOpcode(OP_HASH160); err != nil {
		return nil, err
	}
	if err := s.AppendPush(hash); err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(OP_EQUAL); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildDataOut builds a DATA_OUT script: OP_RETURN, push(data). Text data
// is treated as raw bytes; callers that want a string embedded convert it
// themselves.
func BuildDataOut(data []byte) (*Script, error) {
	s := Empty()
	if err := s.AppendOpcode(OP_RETURN); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := s.AppendPush(data); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MultisigOptions controls BuildMultisigOut and BuildP2SHMultisigIn.
// NoSorting disables the deterministic ascending sort of public keys.
// CachedMultisig, used only by BuildP2SHMultisigIn, supplies an
// already-built multisig redeem script instead of rebuilding one from the
// pubkeys and nrequired arguments.
type MultisigOptions struct {
	NoSorting      bool
	CachedMultisig *Script
}

// BuildMultisigOut builds a bare MULTISIG_OUT script requiring nrequired
// of len(pubkeys) signatures: push small-int(M); one push per public key;
// push small-int(N); OP_CHECKMULTISIG. Unless opts.NoSorting is set, the
// public keys are sorted ascending by their serialized bytes first, so
// that any two parties holding the same key set produce byte-identical
// output scripts regardless of the order they were given the keys in
// (§8 property 7).
func BuildMultisigOut(pubkeys []PublicKey, nrequired int, opts MultisigOptions) (*Script, error) {
	if nrequired < 0 || nrequired > len(pubkeys) {
		return nil, scriptError(ErrInvalidArgument,
			fmt.Sprintf("%d of %d required signatures is not sensible", nrequired, len(pubkeys)))
	}
	if len(pubkeys) > 16 {
		return nil, scriptError(ErrInvalidArgument,
			fmt.Sprintf("%d public keys exceeds the 16 a small-integer opcode can count", len(pubkeys)))
	}

	keys := append([]PublicKey(nil), pubkeys...)
	if !opts.NoSorting {
		sort.SliceStable(keys, func(i, j int) bool {
			return bytes.Compare(keys[i].ToBuffer(), keys[j].ToBuffer()) < 0
		})
	}

	s := Empty()
	mOp, err := SmallInt(nrequired)
	if err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(mOp); err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := s.AppendPush(key.ToBuffer()); err != nil {
			return nil, err
		}
	}
	nOp, err := SmallInt(len(keys))
	if err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(nOp); err != nil {
		return nil, err
	}
	if err := s.AppendOpcode(OP_CHECKMULTISIG); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildP2SHMultisigIn builds the spend (input) script for a P2SH multisig
// output: OP_0 (the historical off-by-one dummy OP_CHECKMULTISIG
// consumes), one push per signature in the given order, then a push of
// the serialized redeem script. The redeem script is opts.CachedMultisig
// if provided, else freshly built via BuildMultisigOut(pubkeys, nrequired,
// opts).
func BuildP2SHMultisigIn(pubkeys []PublicKey, nrequired int, signatures [][]byte, opts MultisigOptions) (*Script, error) {
	redeem := opts.CachedMultisig
	if redeem == nil {
		built, err := BuildMultisigOut(pubkeys, nrequired, MultisigOptions{NoSorting: opts.NoSorting})
		if err != nil {
			return nil, err
		}
		redeem = built
	}

	s := Empty()
	if err := s.AppendOpcode(OP_0); err != nil {
		return nil, err
	}
	for _, sig := range signatures {
		if err := s.AppendPush(sig); err != nil {
			return nil, err
		}
	}
	if err := s.AppendPush(redeem.Bytes()); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildPublicKeyHashIn builds the spend (input) script for a P2PKH output:
// push(signature || sigtype byte), push(pubkey bytes). sigtype defaults to
// SIGHASH_ALL when the caller passes 0.
func BuildPublicKeyHashIn(publicKey PublicKey, signature []byte, sigtype byte) (*Script, error) {
	if sigtype == 0 {
		sigtype = SIGHASH_ALL
	}
	sigWithType := append(append([]byte(nil), signature...), sigtype)

	s := Empty()
	if err := s.AppendPush(sigWithType); err != nil {
		return nil, err
	}
	if err := s.AppendPush(publicKey.ToBuffer()); err != nil {
		return nil, err
	}
	return s, nil
}

// FromAddress builds the canonical output script paying address: a
// SCRIPTHASH_OUT wrapping address's hash if it is pay-to-script-hash, a
// PUBKEYHASH_OUT if it is pay-to-public-key-hash, else ErrUnrecognizedAddress.
func FromAddress(address Address) (*Script, error) {
	switch {
	case address.IsPayToScriptHash():
		hash := address.HashBuffer()
		s := Empty()
		if err := s.AppendOpcode(OP_HASH160); err != nil {
			return nil, err
		}
		if err := s.AppendPush(hash); err != nil {
			return nil, err
		}
		if err := s.AppendOpcode(OP_EQUAL); err != nil {
			return nil, err
		}
		return s, nil
	case address.IsPayToPublicKeyHash():
		return BuildPublicKeyHashOut(address)
	default:
		return nil, scriptError(ErrUnrecognizedAddress,
			"address is neither pay-to-script-hash nor pay-to-public-key-hash")
	}
}
