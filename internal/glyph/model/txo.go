package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxO is a transaction output whose script matched a recognized contract shape.
type TxO struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TxID         string             `bson:"txid" json:"txid"`
	Vout         uint32             `bson:"vout" json:"vout"`
	Script       string             `bson:"script" json:"script"`
	Value        int64              `bson:"value" json:"value"`
	Date         int64              `bson:"date" json:"date"`
	Height       int64              `bson:"height" json:"height"`
	Spent        int                `bson:"spent" json:"spent"`
	Change       *int               `bson:"change,omitempty" json:"change,omitempty"`
	ContractType ContractType       `bson:"contractType" json:"contractType"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Ref          string             `bson:"ref,omitempty" json:"ref,omitempty"`
}

// TxOFilter narrows TxO queries. Zero values are ignored.
type TxOFilter struct {
	ContractType ContractType
	Spent        *int
	Height       *int64
	Address      string
}
