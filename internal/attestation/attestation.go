// Package attestation attaches best-effort chain receipts to ledger
// operations. The gateway never returns an error to the settlement path: any
// chain failure degrades to a deterministic mock receipt with IsMock set.
package attestation

import (
	"context"

	"github.com/korpor/fundledger/internal/config"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/pkg/clients"
)

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Verification is the audit-only view of a previously issued receipt.
type Verification struct {
	Hash          string `json:"hash"`
	ChainStatus   string `json:"chainStatus"`
	Confirmations int    `json:"confirmations"`
	IsMock        bool   `json:"isMock"`
}

// Gateway is the external-call boundary for chain attestation.
//
// Attest must be bounded in latency and must not fail: implementations fall
// back to a mock receipt on timeout, transport error, or missing
// configuration. Verify carries no correctness obligation for the ledger.
type Gateway interface {
	Attest(ctx context.Context, kind domain.TransactionKind, payload map[string]any) domain.Attestation
	Verify(ctx context.Context, hash string) (*Verification, error)
}

// New selects the gateway implementation from configuration, once, at startup.
func New(cfg *config.Config, client clients.HTTPClientI) Gateway {
	if cfg.ChainEnabled && cfg.ChainRPCURL != "" {
		return NewChainGateway(cfg.ChainRPCURL, cfg.ContractAddress, cfg.AttestTimeout, client)
	}
	return NewMockGateway(cfg.ContractAddress)
}
