package holdings

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDecodeLedger(t *testing.T) {
	jsonlStream := `
{"id":"1","date":"2025-08-01","type":"buy","symbol":"BTC","category":"crypto","quantity":0.5,"price":60000,"totalCost":30000,"fees":12.5,"currency":"EUR"}

{"date":"2025-8-2","type":"buy","symbol":"AAPL","category":"stocks","quantity":10,"price":195.5,"currency":"USD"}
{"id":"3","timestamp":"2025-08-03T10:00:00Z","date":"2025-08-03","type":"sell","symbol":"BTC","category":"crypto","quantity":0.25,"price":62000,"currency":"EUR","memo":"rebalance"}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("DecodeLedger() decoded %d transactions, want 3", ledger.Len())
	}

	txs := ledger.Transactions()
	if got := txs[0]; got.ID != "1" || got.Type != Buy || got.Asset != BTC || !got.Fees.Equal(A(12.5)) {
		t.Errorf("first transaction = %+v", got)
	}
	if got := txs[1]; !got.TotalCost.Equal(A(1955)) {
		t.Errorf("missing total cost decoded as %v, want 1955", got.TotalCost)
	}
	if got := txs[2]; got.Memo != "rebalance" || !got.Timestamp.Equal(time.Date(2025, time.August, 3, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("third transaction = %+v", got)
	}
}

func TestDecodeLedger_Error(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader("{\"type\":\"buy\"}\n{not json}\n"))
	if err == nil {
		t.Fatal("DecodeLedger() succeeded, want an error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("DecodeLedger() error = %q, want the line number", err)
	}
}

func TestDecodeLedger_Type(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		want    TxType
		wantErr bool
	}{
		{name: "buy", typ: "buy", want: Buy},
		{name: "upper case sell", typ: "SELL", want: Sell},
		{name: "padded", typ: " buy ", want: Buy},
		{name: "unknown", typ: "transfer", wantErr: true},
		{name: "missing", typ: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := `{"date":"2025-08-01","type":"` + tc.typ + `","symbol":"BTC","category":"crypto","quantity":1,"price":60000,"currency":"EUR"}`
			ledger, err := DecodeLedger(strings.NewReader(line))
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransaction) {
					t.Fatalf("DecodeLedger() error = %v, want ErrInvalidTransaction", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
			}
			if got := ledger.Transactions()[0].Type; got != tc.want {
				t.Errorf("Type = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeLedger(t *testing.T) {
	// Deliberately unsorted: the encoded ledger must keep the insertion order.
	ledger := NewLedger()
	err := ledger.Append(
		buy("2025-08-03", BTC, 1, 60000, 0).WithID("a"),
		buy("2025-08-01", AAPL, 10, 195.5, 1).WithID("b"),
		sell("2025-08-01", BTC, 0.5, 61000, 0).WithID("c").WithMemo("partial"),
	)
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	want := `{"id":"a","date":"2025-08-03","type":"buy","symbol":"BTC","category":"crypto","quantity":1,"price":60000,"totalCost":60000,"currency":"EUR"}
{"id":"b","date":"2025-08-01","type":"buy","symbol":"AAPL","category":"stocks","quantity":10,"price":195.5,"totalCost":1955,"fees":1,"currency":"EUR"}
{"id":"c","date":"2025-08-01","type":"sell","symbol":"BTC","category":"crypto","quantity":0.5,"price":61000,"totalCost":30500,"currency":"EUR","memo":"partial"}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", got, want)
	}

	// Round trip.
	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	original := ledger.Transactions()
	for i, tx := range decoded.Transactions() {
		if !tx.Equal(original[i]) {
			t.Errorf("round trip transaction %d = %+v, want %+v", i, tx, original[i])
		}
	}
}
