package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyJSONAcceptsStringAndNumber(t *testing.T) {
	var fromString, fromNumber Money
	if err := json.Unmarshal([]byte(`"2999.005"`), &fromString); err != nil {
		t.Fatalf("decode string failed: %v", err)
	}
	if err := json.Unmarshal([]byte(`2999`), &fromNumber); err != nil {
		t.Fatalf("decode number failed: %v", err)
	}
	if fromNumber.String() != "2999.00" {
		t.Fatalf("number want 2999.00 got %s", fromNumber.String())
	}
	raw, err := json.Marshal(fromNumber)
	if err != nil || string(raw) != `"2999.00"` {
		t.Fatalf("marshal want \"2999.00\" got %s err=%v", raw, err)
	}
	if err := json.Unmarshal([]byte(`"abc"`), &fromString); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
}

func TestMoneyAbove(t *testing.T) {
	price := mustMoney(t, "100")
	if !mustMoney(t, "120.5").Above(price) {
		t.Fatalf("120.50 should be above 100")
	}
	if price.Above(price) {
		t.Fatalf("equal amounts are not above each other")
	}
	if mustMoney(t, "0").IsPositive() {
		t.Fatalf("zero is not positive")
	}
}
