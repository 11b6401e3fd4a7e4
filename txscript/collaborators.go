// 绑定脚本子系统依赖的外部协作者：公钥、地址与哈希原语。
//
// 这些协作者的内部实现（椭圆曲线运算、地址编码、签名哈希计算）不属于本包，
// 本包只依赖它们暴露的一小组契约。

package txscript

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"golang.org/x/crypto/ripemd160"
)

// SIGHASH_ALL is the default sighash byte appended to a DER signature by
// buildPublicKeyHashIn.
const SIGHASH_ALL byte = 0x01

// PublicKey is the contract the classifier and builders require from a
// public key: validity against the SEC encoding, and its canonical byte
// serialization. btcecPublicKey below is the production binding; tests may
// substitute a fake.
type PublicKey interface {
	IsValid(b []byte) bool
	ToBuffer() []byte
}

// btcecPublicKey binds PublicKey to github.com/btcsuite/btcd/btcec/v2,
// the same curve implementation the rest of the btcsuite stack uses.
type btcecPublicKey struct {
	key *btcec.PublicKey
}

// defaultPublicKey is the PublicKey collaborator used wherever the package
// needs to validate raw bytes rather than operate on an already-parsed key
// (the classifier's shape rules in standard.go).
var defaultPublicKey PublicKey = btcecPublicKey{}

// IsValid reports whether b decodes as a valid SEC-encoded public key (33
// compressed or 65 uncompressed bytes), per §6.5.
func (btcecPublicKey) IsValid(b []byte) bool {
	if len(b) != 33 && len(b) != 65 {
		return false
	}
	_, err := btcec.ParsePubKey(b)
	return err == nil
}

// ToBuffer returns the key's canonical serialization.
func (k btcecPublicKey) ToBuffer() []byte {
	return k.key.SerializeCompressed()
}

// ParsePublicKey parses b as a SEC-encoded public key, returning a
// PublicKey collaborator bound to it.
func ParsePublicKey(b []byte) (PublicKey, error) {
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, scriptError(ErrInvalidArgument, "invalid public key: "+err.Error())
	}
	return btcecPublicKey{key: key}, nil
}

// Address is the contract the builders require from an address: its
// 20-byte payload hash, and which of the two standard templates it names.
// btcutilAddress below binds it to github.com/btcsuite/btcd/btcutil.
type Address interface {
	HashBuffer() []byte
	IsPayToScriptHash() bool
	IsPayToPublicKeyHash() bool
}

// btcutilAddress binds Address to btcutil.Address, the same type the
// rest of the btcsuite stack passes around for encoded addresses.
type btcutilAddress struct {
	addr btcutil.Address
}

// WrapAddress adapts a btcutil.Address into the Address collaborator this
// package consumes.
func WrapAddress(addr btcutil.Address) Address {
	return btcutilAddress{addr: addr}
}

func (a btcutilAddress) HashBuffer() []byte {
	switch v := a.addr.(type) {
	case *btcutil.AddressPubKeyHash:
		h := v.Hash160()
		return h[:]
	case *btcutil.AddressScriptHash:
		h := v.Hash160()
		return h[:]
	case *btcutil.AddressPubKey:
		h := v.AddressPubKeyHash().Hash160()
		return h[:]
	default:
		return nil
	}
}

func (a btcutilAddress) IsPayToScriptHash() bool {
	_, ok := a.addr.(*btcutil.AddressScriptHash)
	return ok
}

func (a btcutilAddress) IsPayToPublicKeyHash() bool {
	switch a.addr.(type) {
	case *btcutil.AddressPubKeyHash, *btcutil.AddressPubKey:
		return true
	default:
		return false
	}
}

// Sha256Ripemd160 computes ripemd160(sha256(b)), the hash chain behind
// OP_HASH160 and every standard template's embedded hash (§6.5).
func Sha256Ripemd160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}
