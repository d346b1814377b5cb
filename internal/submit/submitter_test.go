package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lighter-go/internal/api"
	"lighter-go/internal/nonce"
	"lighter-go/internal/schema"
	"lighter-go/internal/signer"
	"lighter-go/internal/store"
	"lighter-go/internal/transport"
)

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var signatureRe = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// gateway 模拟网关的 nextNonce 与 sendTx 接口。
type gateway struct {
	mu        sync.Mutex
	nextNonce uint64
	requests  []map[string]interface{}
	batches   []map[string]interface{}
	calls     int32
}

func (g *gateway) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/nextNonce", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&g.calls, 1)
		g.mu.Lock()
		defer g.mu.Unlock()
		json.NewEncoder(w).Encode(api.NextNonceResponse{AccountIndex: 42, NextNonce: g.nextNonce})
	})
	mux.HandleFunc("/api/v1/sendTx", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&g.calls, 1)
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)

		g.mu.Lock()
		g.requests = append(g.requests, body)
		seq := len(g.requests)
		g.mu.Unlock()

		json.NewEncoder(w).Encode(SendTxResponse{
			TxHash:    fmt.Sprintf("0xhash%04d", seq),
			Status:    "pending",
			Timestamp: time.Now().UnixMilli(),
		})
	})
	mux.HandleFunc("/api/v1/sendTxBatch", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&g.calls, 1)
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)

		g.mu.Lock()
		g.batches = append(g.batches, body)
		g.mu.Unlock()

		txs, _ := body["transactions"].([]interface{})
		resp := SendTxBatchResponse{BatchID: "batch-1"}
		for i := range txs {
			resp.Transactions = append(resp.Transactions, SendTxResponse{
				TxHash: fmt.Sprintf("0xbatch%04d", i),
				Status: "pending",
			})
		}
		json.NewEncoder(w).Encode(resp)
	})
	return mux
}

// memoryRecorder 收集写入的流水，替代 SQLite。
type memoryRecorder struct {
	mu      sync.Mutex
	entries []store.Entry
}

func (m *memoryRecorder) Record(ctx context.Context, entry store.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func newTestSubmitter(t *testing.T, g *gateway, journal Recorder) (*Submitter, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(g.handler())
	t.Cleanup(server.Close)

	tp := transport.NewClient(transport.Config{
		BaseURL:   server.URL,
		BaseDelay: time.Millisecond,
	}, nil)

	sg, err := signer.New(testPrivateKey, 1)
	if err != nil {
		t.Fatalf("signer.New returned error: %v", err)
	}

	seq := nonce.NewSequencer(api.NewTransactionAPI(tp), 42, nil)
	return New(tp, sg, seq, journal, 42, nil), server
}

func TestCreateOrder_EndToEnd(t *testing.T) {
	g := &gateway{nextNonce: 1}
	journal := &memoryRecorder{}
	sub, _ := newTestSubmitter(t, g, journal)

	resp, err := sub.CreateOrder(context.Background(), CreateOrderParams{
		MarketID:    1,
		Side:        "buy",
		Type:        "limit",
		TimeInForce: "gtc",
		Price:       "50000.5",
		Size:        "0.1",
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if resp.TxHash == "" || resp.Status != "pending" {
		t.Errorf("unexpected response: %+v", resp)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) != 1 {
		t.Fatalf("gateway saw %d sendTx requests, want 1", len(g.requests))
	}
	body := g.requests[0]

	if body["tx_type"] != "create_order" {
		t.Errorf("tx_type %v, want create_order", body["tx_type"])
	}
	if body["account_index"] != float64(42) {
		t.Errorf("account_index %v, want 42", body["account_index"])
	}
	if body["nonce"] != float64(1) {
		t.Errorf("nonce %v, want 1 (seeded by implicit sync)", body["nonce"])
	}
	sig, _ := body["signature"].(string)
	if !signatureRe.MatchString(sig) {
		t.Errorf("signature %q is not 0x-prefixed hex", sig)
	}

	payload, _ := body["payload"].(map[string]interface{})
	if payload == nil {
		t.Fatal("request body missing payload")
	}
	if payload["price"] != "50000.5" || payload["size"] != "0.1" {
		t.Errorf("payload price/size mismatch: %v", payload)
	}
	// 未指定的 client_order_id 以空串参与签名与提交
	if v, ok := payload["client_order_id"]; !ok || v != "" {
		t.Errorf("client_order_id should default to empty string, got %v (present=%v)", v, ok)
	}

	journal.mu.Lock()
	defer journal.mu.Unlock()
	if len(journal.entries) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(journal.entries))
	}
	entry := journal.entries[0]
	if entry.TxType != "create_order" || entry.Nonce != 1 || entry.Status != "pending" {
		t.Errorf("unexpected journal entry: %+v", entry)
	}
}

func TestSubmit_NoncesIncreaseAcrossSubmissions(t *testing.T) {
	g := &gateway{nextNonce: 5}
	sub, _ := newTestSubmitter(t, g, nil)

	ctx := context.Background()
	if _, err := sub.Deposit(ctx, DepositParams{Amount: "100", Token: "USDC"}); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if _, err := sub.Withdraw(ctx, WithdrawParams{Amount: "50", Token: "USDC", Recipient: "0xabc"}); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	if _, err := sub.Transfer(ctx, TransferParams{Amount: "25", Token: "USDC", ToAccountIndex: 7}); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) != 3 {
		t.Fatalf("gateway saw %d requests, want 3", len(g.requests))
	}
	for i, want := range []float64{5, 6, 7} {
		if got := g.requests[i]["nonce"]; got != want {
			t.Errorf("request %d nonce %v, want %v", i, got, want)
		}
	}
}

func TestSubmit_PayloadFieldSetsPerKind(t *testing.T) {
	g := &gateway{nextNonce: 1}
	sub, _ := newTestSubmitter(t, g, nil)

	ctx := context.Background()
	if _, err := sub.CancelOrder(ctx, CancelOrderParams{OrderNonce: 9, MarketID: 2}); err != nil {
		t.Fatalf("CancelOrder returned error: %v", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	payload, _ := g.requests[0]["payload"].(map[string]interface{})
	if payload["order_nonce"] != float64(9) || payload["market_id"] != float64(2) {
		t.Errorf("cancel_order payload mismatch: %v", payload)
	}
	if _, ok := payload["price"]; ok {
		t.Error("cancel_order payload must not carry order fields")
	}
}

func TestSubmit_ValidationRunsBeforeNonceIssue(t *testing.T) {
	g := &gateway{nextNonce: 1}
	sub, _ := newTestSubmitter(t, g, nil)

	cases := []struct {
		name string
		call func(context.Context) error
	}{
		{"bad price", func(ctx context.Context) error {
			_, err := sub.CreateOrder(ctx, CreateOrderParams{MarketID: 1, Side: "buy", Type: "limit", TimeInForce: "gtc", Price: "abc", Size: "1"})
			return err
		}},
		{"negative size", func(ctx context.Context) error {
			_, err := sub.CreateOrder(ctx, CreateOrderParams{MarketID: 1, Side: "buy", Type: "limit", TimeInForce: "gtc", Price: "1", Size: "-2"})
			return err
		}},
		{"bad side", func(ctx context.Context) error {
			_, err := sub.CreateOrder(ctx, CreateOrderParams{MarketID: 1, Side: "long", Type: "limit", TimeInForce: "gtc", Price: "1", Size: "1"})
			return err
		}},
		{"zero amount", func(ctx context.Context) error {
			_, err := sub.Deposit(ctx, DepositParams{Amount: "0", Token: "USDC"})
			return err
		}},
		{"empty recipient", func(ctx context.Context) error {
			_, err := sub.Withdraw(ctx, WithdrawParams{Amount: "1", Token: "USDC"})
			return err
		}},
	}

	for _, tc := range cases {
		if err := tc.call(context.Background()); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	// 校验失败不应触发任何网络请求，远端序列不留空洞
	if got := atomic.LoadInt32(&g.calls); got != 0 {
		t.Errorf("gateway saw %d calls, want 0 (validation precedes nonce issue)", got)
	}
}

func TestSignTransaction_UnknownKindDoesNotSubmit(t *testing.T) {
	g := &gateway{nextNonce: 1}
	sub, _ := newTestSubmitter(t, g, nil)

	_, err := sub.SignTransaction(context.Background(), schema.Kind("liquidate"), map[string]interface{}{})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) != 0 {
		t.Errorf("gateway saw %d sendTx requests, want 0", len(g.requests))
	}
}

func TestSubmitBatch(t *testing.T) {
	g := &gateway{nextNonce: 1}
	journal := &memoryRecorder{}
	sub, _ := newTestSubmitter(t, g, journal)

	ctx := context.Background()
	var txs []signer.SignedTransaction
	for _, amount := range []string{"10", "20", "30"} {
		signed, err := sub.SignTransaction(ctx, schema.KindDeposit, map[string]interface{}{
			"amount": amount,
			"token":  "USDC",
		})
		if err != nil {
			t.Fatalf("SignTransaction returned error: %v", err)
		}
		txs = append(txs, signed)
	}

	resp, err := sub.SubmitBatch(ctx, txs)
	if err != nil {
		t.Fatalf("SubmitBatch returned error: %v", err)
	}
	if resp.BatchID != "batch-1" {
		t.Errorf("batch id %q, want batch-1", resp.BatchID)
	}
	if len(resp.Transactions) != 3 {
		t.Errorf("batch response has %d transactions, want 3", len(resp.Transactions))
	}

	g.mu.Lock()
	if len(g.batches) != 1 {
		t.Fatalf("gateway saw %d batch requests, want 1", len(g.batches))
	}
	sent, _ := g.batches[0]["transactions"].([]interface{})
	if len(sent) != 3 {
		t.Fatalf("batch carried %d transactions, want 3", len(sent))
	}
	first, _ := sent[0].(map[string]interface{})
	if first["nonce"] != float64(1) || first["tx_type"] != "deposit" {
		t.Errorf("unexpected first batch transaction: %v", first)
	}
	g.mu.Unlock()

	journal.mu.Lock()
	defer journal.mu.Unlock()
	if len(journal.entries) != 3 {
		t.Errorf("journal has %d entries, want 3", len(journal.entries))
	}
}

func TestSubmitBatch_EmptyFails(t *testing.T) {
	g := &gateway{nextNonce: 1}
	sub, _ := newTestSubmitter(t, g, nil)

	if _, err := sub.SubmitBatch(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
	if got := atomic.LoadInt32(&g.calls); got != 0 {
		t.Errorf("gateway saw %d calls, want 0", got)
	}
}
