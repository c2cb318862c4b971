package wealth

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "12.26", want: EUR(12.26)},
		{in: "12,26", want: EUR(12.26)},
		{in: " 1000 ", want: EUR(1000)},
		{in: "0", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q) err = %v, want ErrInvalidAmount", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) returned %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoney_Share(t *testing.T) {
	total := decimal.NewFromInt(80)
	if got := EUR(100).Share(decimal.NewFromInt(30), total); !got.Equal(EUR(37.5)) {
		t.Errorf("Share(30/80) of 100 = %s, want 37.50", got)
	}
	// a zero total distributes nothing rather than dividing by zero
	if got := EUR(100).Share(decimal.NewFromInt(30), decimal.Zero); !got.IsZero() {
		t.Errorf("Share with zero total = %s, want zero", got)
	}
}

func TestMoney_Div(t *testing.T) {
	// rounds up to the next cent so three payments always reach the target
	if got := EUR(100).Div(3); !got.Equal(EUR(33.34)) {
		t.Errorf("100/3 = %s, want 33.34", got)
	}
}

func TestMoney_Percent(t *testing.T) {
	if got := EUR(25).Percent(EUR(200)); !got.Equal(12.5) {
		t.Errorf("25 of 200 = %s, want 12.5%%", got)
	}
	if got := EUR(25).Percent(EUR(0)); !got.Equal(0) {
		t.Errorf("of zero total = %s, want 0%%", got)
	}
}
