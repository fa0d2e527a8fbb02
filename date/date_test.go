package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.January, 32)
	if want := New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
	if got := New(2024, time.March, 1).Add(-1); got != New(2024, time.February, 29) {
		t.Errorf("Add(-1) = %v, want 2024-02-29", got)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-01-01", want: New(2023, time.January, 1)},
		{in: "2023-6-1", want: New(2023, time.June, 1)},
		{in: "01/06/2023", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	instant := time.Date(2023, time.June, 1, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600))
	if got, want := Of(instant), New(2023, time.June, 2); got != want {
		t.Errorf("Of(%v) = %v, want %v", instant, got, want)
	}
}

func TestJSON(t *testing.T) {
	var v struct {
		On   Date `json:"on"`
		Zero Date `json:"zero"`
	}
	v.On = New(2023, time.June, 1)
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"on":"2023-06-01","zero":""}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}

	var back struct {
		On   Date `json:"on"`
		Zero Date `json:"zero"`
	}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.On != v.On || !back.Zero.IsZero() {
		t.Errorf("Unmarshal() = %+v, want %+v", back, v)
	}
}
