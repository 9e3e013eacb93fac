package models

import (
	"questgen/domain/bank"
)

// BankState names the loading lifecycle of the context bank
type BankState string

const (
	BankLoading BankState = "loading"
	BankLoaded  BankState = "loaded"
	BankFailed  BankState = "failed"
)

// BankStatus is the reply of GET /api/bank/status. Summary is present only
// once the bank has loaded.
type BankStatus struct {
	State   BankState     `json:"state"`
	Error   string        `json:"error,omitempty"`
	Summary *bank.Summary `json:"summary,omitempty"`
}
