// Package script parses Radiant output scripts and classifies the fixed
// contract shapes the indexer understands.
package script

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// Radiant reference opcodes. Each is followed by a 36-byte outpoint reference.
const (
	OpPushInputRef                = 0xd0
	OpRequireInputRef             = 0xd1
	OpDisallowPushInputRef        = 0xd2
	OpDisallowPushInputRefSibling = 0xd3
	OpPushInputRefSingleton       = 0xd8
)

const refOperandSize = 36

// ErrMalformed is returned when a push runs past the end of the script.
var ErrMalformed = errors.New("malformed script")

// Chunk is one opcode with its operand, if any.
type Chunk struct {
	Opcode byte
	Data   []byte
}

// IsPush reports whether the chunk pushes data onto the stack.
func (c Chunk) IsPush() bool {
	return c.Opcode >= txscript.OP_DATA_1 && c.Opcode <= txscript.OP_PUSHDATA4
}

// IsRef reports whether the chunk is a reference opcode.
func (c Chunk) IsRef() bool {
	return isRefOpcode(c.Opcode)
}

func isRefOpcode(op byte) bool {
	switch op {
	case OpPushInputRef, OpRequireInputRef, OpDisallowPushInputRef,
		OpDisallowPushInputRefSibling, OpPushInputRefSingleton:
		return true
	default:
		return false
	}
}

// Parse splits a script into chunks.
func Parse(script []byte) ([]Chunk, error) {
	chunks := make([]Chunk, 0, 8)
	for i := 0; i < len(script); {
		op := script[i]
		i++

		var n int
		switch {
		case op >= txscript.OP_DATA_1 && op <= txscript.OP_DATA_75:
			n = int(op)
		case op == txscript.OP_PUSHDATA1:
			if len(script)-i < 1 {
				return nil, fmt.Errorf("%w: truncated OP_PUSHDATA1 at %d", ErrMalformed, i-1)
			}
			n = int(script[i])
			i++
		case op == txscript.OP_PUSHDATA2:
			if len(script)-i < 2 {
				return nil, fmt.Errorf("%w: truncated OP_PUSHDATA2 at %d", ErrMalformed, i-1)
			}
			n = int(binary.LittleEndian.Uint16(script[i:]))
			i += 2
		case op == txscript.OP_PUSHDATA4:
			if len(script)-i < 4 {
				return nil, fmt.Errorf("%w: truncated OP_PUSHDATA4 at %d", ErrMalformed, i-1)
			}
			size := binary.LittleEndian.Uint32(script[i:])
			if uint64(size) > uint64(len(script)) {
				return nil, fmt.Errorf("%w: push of %d bytes at %d", ErrMalformed, size, i-1)
			}
			n = int(size)
			i += 4
		case isRefOpcode(op):
			n = refOperandSize
		default:
			chunks = append(chunks, Chunk{Opcode: op})
			continue
		}

		if len(script)-i < n {
			return nil, fmt.Errorf("%w: operand of %d bytes at %d exceeds script", ErrMalformed, n, i)
		}
		chunks = append(chunks, Chunk{Opcode: op, Data: script[i : i+n]})
		i += n
	}
	return chunks, nil
}
