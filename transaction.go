package holdings

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/holdings/date"
	"github.com/shopspring/decimal"
)

// TxType identifies the side of a transaction.
type TxType string

const (
	Buy  TxType = "buy"
	Sell TxType = "sell"
)

// ParseTxType parses a transaction side.
func ParseTxType(s string) (TxType, error) {
	switch t := TxType(strings.ToLower(strings.TrimSpace(s))); t {
	case Buy, Sell:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, s)
}

// Asset identifies what is traded. Holdings are keyed by the full Asset.
type Asset struct {
	Symbol   string
	Category Category
}

func (a Asset) String() string { return a.Symbol + "/" + string(a.Category) }

// Transaction is a single buy or sell recorded in the ledger.
//
// Transactions are values: once recorded they are never modified.
type Transaction struct {
	ID        string
	Timestamp time.Time // when the transaction was recorded
	Date      date.Date // trade date, may differ from Timestamp
	Type      TxType
	Asset     Asset
	Quantity  Quantity
	Price     Amount // unit price in Currency
	TotalCost Amount // Quantity * Price
	Fees      Amount
	Currency  Currency
	Memo      string
}

// NewBuy creates a buy transaction, the total cost is derived from quantity and price.
func NewBuy(on date.Date, asset Asset, quantity Quantity, price, fees Amount, cur Currency) Transaction {
	return newTransaction(Buy, on, asset, quantity, price, fees, cur)
}

// NewSell creates a sell transaction, the total cost is derived from quantity and price.
func NewSell(on date.Date, asset Asset, quantity Quantity, price, fees Amount, cur Currency) Transaction {
	return newTransaction(Sell, on, asset, quantity, price, fees, cur)
}

func newTransaction(t TxType, on date.Date, asset Asset, quantity Quantity, price, fees Amount, cur Currency) Transaction {
	return Transaction{
		Date:      on,
		Type:      t,
		Asset:     asset,
		Quantity:  quantity,
		Price:     price,
		TotalCost: price.Mul(quantity),
		Fees:      fees,
		Currency:  cur,
	}
}

// WithID returns a copy of the transaction with the given id.
func (t Transaction) WithID(id string) Transaction { t.ID = id; return t }

// WithTimestamp returns a copy of the transaction recorded at ts.
func (t Transaction) WithTimestamp(ts time.Time) Transaction { t.Timestamp = ts; return t }

// WithMemo returns a copy of the transaction with a memo.
func (t Transaction) WithMemo(memo string) Transaction { t.Memo = memo; return t }

// TradeTime returns the trade date at midnight UTC, or the timestamp when the
// trade date is missing.
func (t Transaction) TradeTime() time.Time {
	if !t.Date.IsZero() {
		return t.Date.Time()
	}
	return t.Timestamp
}

// Equal reports whether both transactions hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Timestamp.Equal(o.Timestamp) &&
		t.Date == o.Date &&
		t.Type == o.Type &&
		t.Asset == o.Asset &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.TotalCost.Equal(o.TotalCost) &&
		t.Fees.Equal(o.Fees) &&
		t.Currency == o.Currency &&
		t.Memo == o.Memo
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.ID)
	if !t.Timestamp.IsZero() {
		w.Append("timestamp", t.Timestamp.UTC().Format(time.RFC3339))
	}
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("symbol", t.Asset.Symbol)
	w.Append("category", t.Asset.Category)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("totalCost", t.TotalCost)
	if !t.Fees.IsZero() {
		w.Append("fees", t.Fees)
	}
	w.Append("currency", t.Currency)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The type is parsed with ParseTxType and a missing total cost is derived
// from quantity and price.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string           `json:"id"`
		Timestamp time.Time        `json:"timestamp"`
		Date      date.Date        `json:"date"`
		Type      string           `json:"type"`
		Symbol    string           `json:"symbol"`
		Category  Category         `json:"category"`
		Quantity  decimal.Decimal  `json:"quantity"`
		Price     decimal.Decimal  `json:"price"`
		TotalCost *decimal.Decimal `json:"totalCost"`
		Fees      decimal.Decimal  `json:"fees"`
		Currency  Currency         `json:"currency"`
		Memo      string           `json:"memo"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	typ, err := ParseTxType(temp.Type)
	if err != nil {
		return err
	}
	*t = Transaction{
		ID:        temp.ID,
		Timestamp: temp.Timestamp,
		Date:      temp.Date,
		Type:      typ,
		Asset:     Asset{Symbol: temp.Symbol, Category: temp.Category},
		Quantity:  Q(temp.Quantity),
		Price:     A(temp.Price),
		Fees:      A(temp.Fees),
		Currency:  temp.Currency,
		Memo:      temp.Memo,
	}
	if temp.TotalCost != nil {
		t.TotalCost = A(*temp.TotalCost)
	} else {
		t.TotalCost = t.Price.Mul(t.Quantity)
	}
	return nil
}
