package model

import "time"

// Block is the parsed view of a block used for processing.
type Block struct {
	Hash         string
	Height       int64
	PreviousHash string
	Time         time.Time
	Transactions []Transaction
}

// Transaction is a parsed transaction with its inputs and outputs in order.
type Transaction struct {
	TxID    string
	Inputs  []Input
	Outputs []Output
}

// Input spends a previous output. Coinbase inputs have an empty PrevTxID.
type Input struct {
	Index     int
	PrevTxID  string
	PrevVout  uint32
	ScriptHex string
	Coinbase  bool
}

// Output is a transaction output with its locking script.
type Output struct {
	N         uint32
	Value     int64
	ScriptHex string
	ScriptAsm string
}
