package attestation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/pkg/clients"
	"go.uber.org/zap"
)

const chainRetries = 2

// ChainGateway records operations on an external chain relay. Every failure
// path downgrades to the mock gateway, so Attest keeps the never-fails
// contract regardless of relay availability.
type ChainGateway struct {
	url             string
	contractAddress string
	timeout         time.Duration
	client          clients.HTTPClientI
	fallback        *MockGateway
}

func NewChainGateway(url, contractAddress string, timeout time.Duration, client clients.HTTPClientI) *ChainGateway {
	return &ChainGateway{
		url:             url,
		contractAddress: contractAddress,
		timeout:         timeout,
		client:          client,
		fallback:        NewMockGateway(contractAddress),
	}
}

type attestRequest struct {
	Kind            string         `json:"kind"`
	Payload         map[string]any `json:"payload"`
	ContractAddress string         `json:"contractAddress,omitempty"`
}

type attestResponse struct {
	Hash            string `json:"hash"`
	BlockNumber     int64  `json:"blockNumber"`
	GasUsed         string `json:"gasUsed"`
	Status          string `json:"status"`
	ContractAddress string `json:"contractAddress"`
}

func (g *ChainGateway) Attest(ctx context.Context, kind domain.TransactionKind, payload map[string]any) domain.Attestation {
	if g.url == "" {
		return g.fallback.Attest(ctx, kind, payload)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var resp attestResponse
	err := retry.Do(
		func() error {
			return g.post(ctx, g.url+"/attestations", attestRequest{
				Kind:            string(kind),
				Payload:         payload,
				ContractAddress: g.contractAddress,
			}, &resp)
		},
		retry.Attempts(chainRetries),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		zap.L().Warn("chain attestation failed, falling back to mock",
			zap.String("kind", string(kind)), zap.Error(err))
		return g.fallback.Attest(ctx, kind, payload)
	}

	status := resp.Status
	if status == "" {
		status = StatusConfirmed
	}
	contract := resp.ContractAddress
	if contract == "" {
		contract = g.contractAddress
	}
	return domain.Attestation{
		Hash:            resp.Hash,
		BlockNumber:     resp.BlockNumber,
		GasUsed:         resp.GasUsed,
		ChainStatus:     status,
		ContractAddress: contract,
		IsMock:          false,
	}
}

type verifyResponse struct {
	Status        string `json:"status"`
	Confirmations int    `json:"confirmations"`
}

func (g *ChainGateway) Verify(ctx context.Context, hash string) (*Verification, error) {
	if g.url == "" || len(hash) < 2 {
		return g.fallback.Verify(ctx, hash)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	statusCode, body, _, err := g.client.Get(g.url+"/attestations/"+hash, nil)
	if err != nil {
		return nil, fmt.Errorf("can't verify attestation: %w", err)
	}
	if statusCode == http.StatusNotFound {
		return &Verification{Hash: hash, ChainStatus: StatusPending}, nil
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected verify status code: %d", statusCode)
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("can't decode verify response: %w", err)
	}
	return &Verification{
		Hash:          hash,
		ChainStatus:   resp.Status,
		Confirmations: resp.Confirmations,
	}, nil
}

func (g *ChainGateway) post(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
