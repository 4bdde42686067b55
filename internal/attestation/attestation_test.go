package attestation

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/korpor/fundledger/internal/config"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	doResp  *http.Response
	doErr   error
	getCode int
	getBody []byte
	getErr  error
}

func (c *fakeClient) Do(req *http.Request) (*http.Response, error) {
	if c.doErr != nil {
		return nil, c.doErr
	}
	return c.doResp, nil
}

func (c *fakeClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	return c.getCode, c.getBody, nil, c.getErr
}

func jsonResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestNewSelectsGateway(t *testing.T) {
	cfg := &config.Config{ChainEnabled: true, ChainRPCURL: "http://relay", AttestTimeout: time.Second}
	assert.IsType(t, &ChainGateway{}, New(cfg, &fakeClient{}))

	cfg = &config.Config{ChainEnabled: false}
	assert.IsType(t, &MockGateway{}, New(cfg, &fakeClient{}))
}

func TestMockGatewayAttest(t *testing.T) {
	g := NewMockGateway("0xcontract")

	payload := map[string]any{"userId": 1, "transactionId": 7, "amount": "500", "currency": "TND"}
	receipt := g.Attest(context.Background(), domain.KindDeposit, payload)

	assert.True(t, receipt.IsMock)
	assert.Equal(t, StatusConfirmed, receipt.ChainStatus)
	assert.Equal(t, "0xcontract", receipt.ContractAddress)
	assert.True(t, strings.HasPrefix(receipt.Hash, "0x"))
	assert.Len(t, receipt.Hash, 66)
	assert.GreaterOrEqual(t, receipt.BlockNumber, int64(17_000_000))
	assert.Less(t, receipt.BlockNumber, int64(18_000_000))

	gas, err := strconv.ParseInt(receipt.GasUsed, 10, 64)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, gas, int64(21_000))
	assert.Less(t, gas, int64(71_000))

	// Random salt keeps identical payloads from colliding.
	other := g.Attest(context.Background(), domain.KindDeposit, payload)
	assert.NotEqual(t, receipt.Hash, other.Hash)
}

func TestMockGatewayVerify(t *testing.T) {
	g := NewMockGateway("")

	v, err := g.Verify(context.Background(), "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, "0xabc", v.Hash)
	assert.Equal(t, StatusConfirmed, v.ChainStatus)
	assert.Equal(t, 6, v.Confirmations)
	assert.True(t, v.IsMock)
}

func TestChainGatewayAttest(t *testing.T) {
	t.Run("relay receipt is returned as-is", func(t *testing.T) {
		client := &fakeClient{doResp: jsonResponse(http.StatusOK,
			`{"hash":"0xdeadbeef","blockNumber":17123456,"gasUsed":"30000","status":"confirmed"}`)}
		g := NewChainGateway("http://relay", "0xcontract", time.Second, client)

		receipt := g.Attest(context.Background(), domain.KindDeposit, map[string]any{"userId": 1})
		assert.False(t, receipt.IsMock)
		assert.Equal(t, "0xdeadbeef", receipt.Hash)
		assert.Equal(t, int64(17123456), receipt.BlockNumber)
		assert.Equal(t, "0xcontract", receipt.ContractAddress)
	})

	t.Run("transport failure falls back to a mock receipt", func(t *testing.T) {
		client := &fakeClient{doErr: errors.New("connection refused")}
		g := NewChainGateway("http://relay", "0xcontract", 100*time.Millisecond, client)

		receipt := g.Attest(context.Background(), domain.KindDeposit, map[string]any{"userId": 1})
		assert.True(t, receipt.IsMock)
		assert.Equal(t, StatusConfirmed, receipt.ChainStatus)
		assert.NotEmpty(t, receipt.Hash)
	})

	t.Run("unexpected status falls back to a mock receipt", func(t *testing.T) {
		client := &fakeClient{doResp: jsonResponse(http.StatusBadGateway, `{}`)}
		g := NewChainGateway("http://relay", "", time.Second, client)

		receipt := g.Attest(context.Background(), domain.KindWithdrawal, nil)
		assert.True(t, receipt.IsMock)
	})

	t.Run("missing url degrades to the mock gateway", func(t *testing.T) {
		g := NewChainGateway("", "", time.Second, &fakeClient{})

		receipt := g.Attest(context.Background(), domain.KindDeposit, nil)
		assert.True(t, receipt.IsMock)
	})
}

func TestChainGatewayVerify(t *testing.T) {
	t.Run("known receipt", func(t *testing.T) {
		client := &fakeClient{getCode: http.StatusOK, getBody: []byte(`{"status":"confirmed","confirmations":12}`)}
		g := NewChainGateway("http://relay", "", time.Second, client)

		v, err := g.Verify(context.Background(), "0xdeadbeef")
		assert.NoError(t, err)
		assert.Equal(t, "confirmed", v.ChainStatus)
		assert.Equal(t, 12, v.Confirmations)
		assert.False(t, v.IsMock)
	})

	t.Run("unknown receipt reads as pending", func(t *testing.T) {
		client := &fakeClient{getCode: http.StatusNotFound}
		g := NewChainGateway("http://relay", "", time.Second, client)

		v, err := g.Verify(context.Background(), "0xmissing")
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, v.ChainStatus)
	})

	t.Run("transport failure surfaces an error", func(t *testing.T) {
		client := &fakeClient{getErr: errors.New("timeout")}
		g := NewChainGateway("http://relay", "", time.Second, client)

		_, err := g.Verify(context.Background(), "0xdeadbeef")
		assert.Error(t, err)
	})
}
