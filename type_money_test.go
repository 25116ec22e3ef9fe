package sharefolio

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := GBPs(100)
	b := GBPs(50)

	if got := a.Add(b); !got.Equal(GBPs(150)) {
		t.Errorf("Add = %s, want %s", got, GBPs(150))
	}
	if got := a.Sub(b); !got.Equal(GBPs(50)) {
		t.Errorf("Sub = %s, want %s", got, GBPs(50))
	}
	if got := a.Mul(Q(2.5)); !got.Equal(GBPs(250)) {
		t.Errorf("Mul = %s, want %s", got, GBPs(250))
	}
	if got := a.Ratio(b); !got.Equal(newDecimal(2)) {
		t.Errorf("Ratio = %s, want 2", got)
	}
}

func TestMoney_ExactDecimal(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimals, the classic float drift must not appear.
	got := GBPs(0.1).Add(GBPs(0.2))
	if !got.Equal(GBPs(0.3)) {
		t.Errorf("0.1+0.2 = %s, want %s", got, GBPs(0.3))
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// the "" currency is weak, it adopts the other operand's currency
	if got := M(0, "").Add(GBPs(10)); got.Currency() != "GBP" {
		t.Errorf("currency = %q, want GBP", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("adding GBP and USD did not panic")
		}
	}()
	GBPs(1).Add(USD(1))
}

func TestMoney_String(t *testing.T) {
	if got := GBPs(1500.5).String(); got != "£1,500.50" {
		t.Errorf("String() = %q, want %q", got, "£1,500.50")
	}
	if got := GBPs(-2).SignedString(); got != "-£2.00" {
		t.Errorf("SignedString() = %q, want %q", got, "-£2.00")
	}
	if got := GBPs(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(GBPs(2.85))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if want := `{"currency":"GBP","amount":"2.85"}`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	var m Money
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !m.Equal(GBPs(2.85)) {
		t.Errorf("round trip = %s, want %s", m, GBPs(2.85))
	}
}

func TestPercent_String(t *testing.T) {
	if got := Percent(50).String(); got != "50.00%" {
		t.Errorf("String() = %q, want %q", got, "50.00%")
	}
	if got := Percent(-1.234).SignedString(); got != "-1.23%" {
		t.Errorf("SignedString() = %q, want %q", got, "-1.23%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
}

func TestPercent_Equal(t *testing.T) {
	if !Percent(50).Equal(Percent(50.00001)) {
		t.Error("percent comparison should tolerate sub-epsilon drift")
	}
	if Percent(50).Equal(Percent(50.1)) {
		t.Error("percent comparison should reject real differences")
	}
}
