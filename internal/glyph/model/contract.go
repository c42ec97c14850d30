package model

// ContractType classifies a persisted transaction output by script shape.
type ContractType string

const (
	ContractRXD           ContractType = "RXD"
	ContractNFT           ContractType = "NFT"
	ContractFT            ContractType = "FT"
	ContractContainer     ContractType = "CONTAINER"
	ContractUser          ContractType = "USER"
	ContractDelegateBurn  ContractType = "DELEGATE_BURN"
	ContractDelegateToken ContractType = "DELEGATE_TOKEN"
)

// IsDelegate reports whether the contract only references another token.
func (c ContractType) IsDelegate() bool {
	return c == ContractDelegateBurn || c == ContractDelegateToken
}

// TokenType is the persisted kind of a Glyph.
type TokenType string

const (
	TokenNFT       TokenType = "NFT"
	TokenFT        TokenType = "FT"
	TokenDAT       TokenType = "DAT"
	TokenContainer TokenType = "CONTAINER"
	TokenUser      TokenType = "USER"
)
