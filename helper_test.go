package holdings

import (
	"time"

	"github.com/etnz/holdings/date"
)

var (
	BTC  = Asset{Symbol: "BTC", Category: Crypto}
	ETH  = Asset{Symbol: "ETH", Category: Crypto}
	AAPL = Asset{Symbol: "AAPL", Category: Stocks}
	AK47 = Asset{Symbol: "AK-47 | Redline", Category: CS2}
)

// buy is a helper for tests to create a euro buy from constants.
func buy(on string, asset Asset, quantity, price, fees float64) Transaction {
	return NewBuy(date.MustParse(on), asset, Q(quantity), A(price), A(fees), EUR)
}

// sell is a helper for tests to create a euro sell from constants.
func sell(on string, asset Asset, quantity, price, fees float64) Transaction {
	return NewSell(date.MustParse(on), asset, Q(quantity), A(price), A(fees), EUR)
}

// fixedNow is the reference instant used to compute holding days in tests.
var fixedNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
