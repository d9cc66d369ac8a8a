package gcnlookup

import (
	"github.com/gcndis/gcn"
)

const maxMnemonicLength = 48

var opMap = make(map[string]gcn.Op)

func init() {
	// image variants share the base mnemonic; the first entry wins
	for _, op := range gcn.AllOps() {
		name := op.Name()
		if _, ok := opMap[name]; !ok {
			opMap[name] = op
		}
	}
}

// Lookup the opcode for a mnemonic. The mnemonic will be converted to
// lowercase if necessary.
func Op(mnemonic string) (gcn.Op, bool) {
	if len(mnemonic) < maxMnemonicLength {
		op, ok := opMap[lowerCase(mnemonic)]
		return op, ok
	}
	return gcn.INVALID, false
}

func lowerCase(s string) string {
	var b [maxMnemonicLength]byte
	changed := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		// mnemonics contain underscores and digits, so only fold A-Z
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
			changed = true
		}
		b[i] = ch
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
