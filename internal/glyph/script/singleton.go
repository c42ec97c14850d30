package script

import (
	"encoding/hex"
	"strings"
)

const singletonAsm = "OP_PUSHINPUTREFSINGLETON"

// HasSingletonRef reports whether an output script asserts a singleton
// reference. The node's disassembly is used when present.
func HasSingletonRef(asm, scriptHex string) bool {
	if asm != "" {
		return strings.Contains(asm, singletonAsm)
	}
	b, err := hex.DecodeString(scriptHex)
	if err != nil {
		return false
	}
	chunks, err := Parse(b)
	if err != nil {
		return false
	}
	for _, c := range chunks {
		if c.Opcode == OpPushInputRefSingleton {
			return true
		}
	}
	return false
}
