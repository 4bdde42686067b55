package attestation

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/korpor/fundledger/internal/domain"
	"go.uber.org/zap"
)

// MockGateway synthesizes content-derived receipts without touching a chain.
// It backs test environments and is the fallback of ChainGateway.
type MockGateway struct {
	contractAddress string
	now             func() time.Time
}

func NewMockGateway(contractAddress string) *MockGateway {
	return &MockGateway{
		contractAddress: contractAddress,
		now:             time.Now,
	}
}

func (g *MockGateway) Attest(_ context.Context, kind domain.TransactionKind, payload map[string]any) domain.Attestation {
	receipt := domain.Attestation{
		Hash:            mockHash(kind, payload, g.now()),
		BlockNumber:     17_000_000 + randInt64(1_000_000),
		GasUsed:         fmt.Sprintf("%d", 21_000+randInt64(50_000)),
		ChainStatus:     StatusConfirmed,
		ContractAddress: g.contractAddress,
		IsMock:          true,
	}
	zap.L().Debug("mock attestation generated", zap.String("kind", string(kind)), zap.String("hash", receipt.Hash))
	return receipt
}

func (g *MockGateway) Verify(_ context.Context, hash string) (*Verification, error) {
	return &Verification{
		Hash:          hash,
		ChainStatus:   StatusConfirmed,
		Confirmations: 6,
		IsMock:        true,
	}, nil
}

// mockHash derives a hash from the operation content, the time and a random
// salt, matching the shape of a real chain transaction hash.
func mockHash(kind domain.TransactionKind, payload map[string]any, at time.Time) string {
	salt := make([]byte, 16)
	rand.Read(salt)

	body, _ := json.Marshal(payload)
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%d_%s_%s", kind, at.UnixMilli(), body, hex.EncodeToString(salt))))
	return "0x" + hex.EncodeToString(sum[:])
}

func randInt64(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0
	}
	return n.Int64()
}
