package models

import "testing"

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		warning  int
		critical int
		want     string
	}{
		{"healthy", 50, 20, 5, StockStatusOK},
		{"at warning threshold", 20, 20, 5, StockStatusWarning},
		{"at critical threshold", 5, 20, 5, StockStatusCritical},
		{"between thresholds", 10, 20, 5, StockStatusWarning},
		{"zero is empty", 0, 20, 5, StockStatusEmpty},
		{"negative is empty", -2, 20, 5, StockStatusEmpty},
		{"empty wins over critical", 0, 20, 30, StockStatusEmpty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := Item{CurrentStock: tc.stock, WarningThreshold: tc.warning, CriticalThreshold: tc.critical}
			if got := item.DeriveStockStatus(); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}
