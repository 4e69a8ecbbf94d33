package domain

import "time"

// CrossChainSwap is a row of the thorchain/chainflip swap tables.
type CrossChainSwap struct {
	ID                 int64     `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	SourceAsset        *string   `json:"sourceAsset"`
	DestinationAsset   *string   `json:"destinationAsset"`
	SourceAmount       *string   `json:"sourceAmount"`
	DestinationAmount  *string   `json:"destinationAmount"`
	SourceAddress      *string   `json:"sourceAddress"`
	DestinationAddress *string   `json:"destinationAddress"`
	TxHash             *string   `json:"txHash"`
}

// ClosingPrice is a daily BTC close.
type ClosingPrice struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}
