// 识别标准输出/输入模板，并为已识别的脚本生成类型标签。

package txscript

// ScriptClass identifies the type of a script, one of the standard
// templates recognized in §4.5, or UNKNOWN if none match.
type ScriptClass byte

const (
	UNKNOWN ScriptClass = iota
	PUBKEY_OUT
	PUBKEY_IN
	PUBKEYHASH_OUT
	PUBKEYHASH_IN
	SCRIPTHASH_OUT
	SCRIPTHASH_IN
	MULTISIG_OUT
	MULTISIG_IN
	DATA_OUT
)

var scriptClassToName = []string{
	UNKNOWN:        "nonstandard",
	PUBKEY_OUT:     "pubkey",
	PUBKEY_IN:      "pubkey-in",
	PUBKEYHASH_OUT: "pubkeyhash",
	PUBKEYHASH_IN:  "pubkeyhash-in",
	SCRIPTHASH_OUT: "scripthash",
	SCRIPTHASH_IN:  "scripthash-in",
	MULTISIG_OUT:   "multisig",
	MULTISIG_IN:    "multisig-in",
	DATA_OUT:       "nulldata",
}

// String returns the ScriptClass as a human-readable name.
//
// NOTE: This is part of the stringer interface.
func (c ScriptClass) String() string {
	if int(c) >= len(scriptClassToName) {
		return "invalid"
	}
	return scriptClassToName[c]
}

// Classify examines s's chunk sequence and returns the first template in
// §4.5's definition order that matches its shape. The order is part of
// the contract, not an implementation accident: PUBKEYHASH_IN is checked
// before SCRIPTHASH_IN so that a structurally ambiguous two-chunk push
// script resolves to PUBKEYHASH_IN.
func (s *Script) Classify() ScriptClass {
	chunks := s.chunks
	switch {
	case isPubKeyHashOut(chunks):
		return PUBKEYHASH_OUT
	case isPubKeyHashIn(chunks):
		return PUBKEYHASH_IN
	case isPubKeyOut(chunks):
		return PUBKEY_OUT
	case isPubKeyIn(chunks):
		return PUBKEY_IN
	case isScriptHashOut(chunks):
		return SCRIPTHASH_OUT
	case isScriptHashIn(chunks):
		return SCRIPTHASH_IN
	case isMultisigOut(chunks):
		return MULTISIG_OUT
	case isMultisigIn(chunks):
		return MULTISIG_IN
	case isDataOut(chunks):
		return DATA_OUT
	default:
		return UNKNOWN
	}
}

func isPubKeyHashOut(chunks []Chunk) bool {
	return len(chunks) == 5 &&
		chunks[0].opcode == OP_DUP &&
		chunks[1].opcode == OP_HASH160 &&
		chunks[2].IsPush() && len(chunks[2].payload) == 20 &&
		chunks[3].opcode == OP_EQUALVERIFY &&
		chunks[4].opcode == OP_CHECKSIG
}

// sigLengths holds the DER-signature-plus-sighash-byte lengths §4.5 names
// explicitly: 0x47, 0x48, 0x49.
var sigLengths = map[int]bool{0x47: true, 0x48: true, 0x49: true}

func isPubKeyHashIn(chunks []Chunk) bool {
	if len(chunks) != 2 {
		return false
	}
	if !chunks[0].IsPush() || !sigLengths[len(chunks[0].payload)] {
		return false
	}
	if !chunks[1].IsPush() {
		return false
	}
	return defaultPublicKey.IsValid(chunks[1].payload)
}

func isPubKeyOut(chunks []Chunk) bool {
	if len(chunks) != 2 {
		return false
	}
	if !chunks[0].IsPush() || !defaultPublicKey.IsValid(chunks[0].payload) {
		return false
	}
	return chunks[1].opcode == OP_CHECKSIG
}

func isPubKeyIn(chunks []Chunk) bool {
	return len(chunks) == 1 && chunks[0].IsPush() && len(chunks[0].payload) == 0x47
}

func isScriptHashOut(chunks []Chunk) bool {
	return len(chunks) == 3 &&
		chunks[0].opcode == OP_HASH160 &&
		chunks[1].IsPush() && len(chunks[1].payload) == 20 &&
		chunks[2].opcode == OP_EQUAL
}

func isScriptHashIn(chunks []Chunk) bool {
	if len(chunks) == 0 {
		return false
	}
	last := chunks[len(chunks)-1]
	if !last.IsPush() {
		return false
	}
	redeem, err := Parse(last.payload)
	if err != nil {
		return false
	}
	return redeem.Classify() != UNKNOWN
}

func isMultisigOut(chunks []Chunk) bool {
	if len(chunks) <= 3 {
		return false
	}
	if !IsSmallInt(chunks[0].opcode) {
		return false
	}
	for _, c := range chunks[1 : len(chunks)-2] {
		if !c.IsPush() {
			return false
		}
	}
	if !IsSmallInt(chunks[len(chunks)-2].opcode) {
		return false
	}
	return chunks[len(chunks)-1].opcode == OP_CHECKMULTISIG
}

func isMultisigIn(chunks []Chunk) bool {
	if len(chunks) < 2 {
		return false
	}
	if chunks[0].opcode != OP_0 {
		return false
	}
	for _, c := range chunks[1:] {
		if !c.IsPush() || len(c.payload) != 0x47 {
			return false
		}
	}
	return true
}

func isDataOut(chunks []Chunk) bool {
	if len(chunks) == 0 || chunks[0].opcode != OP_RETURN {
		return false
	}
	switch len(chunks) {
	case 1:
		return true
	case 2:
		return chunks[1].IsPush() && len(chunks[1].payload) <= 40
	default:
		return false
	}
}

// PublicKeyHash returns the 20-byte hash embedded in a PUBKEYHASH_OUT
// script. It fails with ErrPreconditionFailed on any other classification.
func (s *Script) PublicKeyHash() ([]byte, error) {
	if s.Classify() != PUBKEYHASH_OUT {
		return nil, scriptError(ErrPreconditionFailed,
			"PublicKeyHash called on a script that is not PUBKEYHASH_OUT")
	}
	return s.chunks[2].payload, nil
}

// ScriptHash returns the 20-byte hash embedded in a SCRIPTHASH_OUT script.
// It fails with ErrPreconditionFailed on any other classification.
func (s *Script) ScriptHash() ([]byte, error) {
	if s.Classify() != SCRIPTHASH_OUT {
		return nil, scriptError(ErrPreconditionFailed,
			"ScriptHash called on a script that is not SCRIPTHASH_OUT")
	}
	return s.chunks[1].payload, nil
}
