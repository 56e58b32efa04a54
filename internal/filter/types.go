package filter

// MaxTopics is the number of topic slots a filter can constrain.
const MaxTopics = 4

// RawFilter is one filter object of a shadow_getLogs request as sent by the client.
type RawFilter struct {
	Address   []string `json:"address"`
	BlockHash *string  `json:"blockHash"`
	FromBlock *string  `json:"fromBlock"`
	ToBlock   *string  `json:"toBlock"`
	Topics    []string `json:"topics"`
}

// Validated is a filter resolved to a concrete inclusive block range.
// FromBlock <= ToBlock is not enforced.
type Validated struct {
	FromBlock uint64
	ToBlock   uint64

	// Addresses are lowercase 0x-prefixed hex strings
	Addresses []string

	// Topics holds one exact-match value per slot, nil slots are unconstrained
	Topics [MaxTopics]*string
}
