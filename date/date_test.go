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
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2024, 2, 30)
	if want := MustParse("2024-03-01"); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-15", want: "2024-01-15"},
		{in: "2024-1-5", want: "2024-01-05"},
		{in: "15/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got.String() != tc.want {
				t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*3600)
	got := Of(time.Date(2024, 3, 9, 23, 30, 0, 0, loc))
	if got.String() != "2024-03-09" {
		t.Errorf("Of() = %v, want 2024-03-09", got)
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		On  Date  `json:"on"`
		Due *Date `json:"due"`
	}
	in := holder{On: MustParse("2024-02-01")}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"on":"2024-02-01","due":null}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}
	var out holder
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.On != in.On || out.Due != nil {
		t.Errorf("Unmarshal() = %+v, want %+v", out, in)
	}
	if err := json.Unmarshal([]byte(`{"on":"soon"}`), &out); err == nil {
		t.Errorf("Unmarshal(soon) expected an error")
	}
}

func TestJSON_ZeroDate(t *testing.T) {
	var zero Date
	b, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "null" {
		t.Errorf("Marshal(zero) = %s, want null", b)
	}

	for _, in := range []string{`null`, `""`} {
		d := MustParse("2024-02-01")
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", in, err)
		}
		if !d.IsZero() {
			t.Errorf("Unmarshal(%s) = %v, want the zero date", in, d)
		}
	}
}
