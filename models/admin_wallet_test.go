package models

import "testing"

func TestValidWalletNetwork(t *testing.T) {
	cases := []struct {
		walletType  string
		networkType string
		want        bool
	}{
		{"USDT", "TRC20", true},
		{"USDT", "ERC20", true},
		{"USDT", "BEP20", true},
		{"USDT", "Bitcoin", false},
		{"BTC", "Bitcoin", true},
		{"BTC", "TRC20", false},
		{"ETH", "ERC20", true},
		{"GOLD", "Internal", true},
		{"DOGE", "Dogecoin", false},
		{"", "", false},
	}
	for _, c := range cases {
		if got := ValidWalletNetwork(c.walletType, c.networkType); got != c.want {
			t.Fatalf("ValidWalletNetwork(%q, %q) = %v, want %v", c.walletType, c.networkType, got, c.want)
		}
	}
}

func TestWalletTypesIsACopy(t *testing.T) {
	m := WalletTypes()
	if len(m["USDT"]) == 0 {
		t.Fatalf("expected USDT networks in wallet type table")
	}
	m["USDT"][0] = "mutated"
	if !ValidWalletNetwork("USDT", "TRC20") {
		t.Fatalf("mutating the returned map must not affect the compatibility table")
	}
}
