package estate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProperty_MarshalJSON(t *testing.T) {
	p := SampleProperties()[0]
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"1","name":"Maple Street Duplex","address":"142 Maple Street, Austin, TX","type":"Duplex",` +
		`"purchasePrice":285000,"currentValue":340000,"monthlyRent":2800,"monthlyExpenses":1200,` +
		`"yearPurchased":2021,"sqft":2200,"units":2}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}

	got, err = json.Marshal(Property{ID: "9", Name: "Bare"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want = `{"id":"9","name":"Bare","address":"","type":"","purchasePrice":0,"currentValue":0,"monthlyRent":0,"monthlyExpenses":0}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenovation_MarshalJSON(t *testing.T) {
	r := SampleRenovations()[1]
	got, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"2","propertyId":"1","title":"Bathroom Tile Repair - Unit B",` +
		`"description":"Replace cracked tiles and fix grout in master bathroom","estimatedCost":2500,` +
		`"actualCost":null,"priority":"medium","status":"pending","category":"Bathroom",` +
		`"createdAt":"2024-02-01","dueDate":"2024-05-15","notes":""}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestCollections_JSONRoundTrip(t *testing.T) {
	ps := SampleProperties()
	data, err := json.Marshal(ps)
	if err != nil {
		t.Fatalf("Marshal(properties) error = %v", err)
	}
	var gotPs Properties
	if err := json.Unmarshal(data, &gotPs); err != nil {
		t.Fatalf("Unmarshal(properties) error = %v", err)
	}
	if diff := cmp.Diff(ps, gotPs); diff != "" {
		t.Errorf("properties round trip mismatch (-want +got):\n%s", diff)
	}

	rs := SampleRenovations()
	data, err = json.Marshal(rs)
	if err != nil {
		t.Fatalf("Marshal(renovations) error = %v", err)
	}
	var gotRs Renovations
	if err := json.Unmarshal(data, &gotRs); err != nil {
		t.Fatalf("Unmarshal(renovations) error = %v", err)
	}
	if diff := cmp.Diff(rs, gotRs); diff != "" {
		t.Errorf("renovations round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenovation_UnmarshalRejectsUnknownStatus(t *testing.T) {
	var r Renovation
	err := json.Unmarshal([]byte(`{"id":"1","status":"cancelled","priority":"low"}`), &r)
	if err == nil {
		t.Fatalf("Unmarshal() of an unknown status succeeded: %+v", r)
	}
	err = json.Unmarshal([]byte(`{"id":"1","status":"pending","priority":"asap"}`), &r)
	if err == nil {
		t.Fatalf("Unmarshal() of an unknown priority succeeded: %+v", r)
	}
}

func TestRenovation_UnmarshalRequiresStatusAndPriority(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"no status", `{"id":"1","priority":"low","createdAt":"2024-01-01"}`},
		{"no priority", `{"id":"1","status":"pending","createdAt":"2024-01-01"}`},
		{"empty status", `{"id":"1","status":"","priority":"low"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r Renovation
			if err := json.Unmarshal([]byte(tc.data), &r); err == nil {
				t.Errorf("Unmarshal() succeeded: %+v", r)
			}
		})
	}
}

func TestRenovation_ZeroDatesRoundTrip(t *testing.T) {
	var r Renovation
	if err := json.Unmarshal([]byte(`{"id":"u1","status":"pending","priority":"low","dueDate":""}`), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !r.CreatedAt.IsZero() || r.DueDate != nil {
		t.Errorf("CreatedAt, DueDate = %v, %v, want zero and nil", r.CreatedAt, r.DueDate)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got Renovation
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", data, err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestProperties_ImmutableUpdates(t *testing.T) {
	ps := SampleProperties()
	added := ps.WithAdded(Property{ID: "4", Name: "New"})
	if len(ps) != 3 || len(added) != 4 {
		t.Fatalf("len(ps), len(added) = %d, %d, want 3, 4", len(ps), len(added))
	}
	if added[3].ID != "4" {
		t.Errorf("added property at %q, want last", added[3].ID)
	}

	// appending twice to the same collection must not share storage.
	other := ps.WithAdded(Property{ID: "5"})
	if added[3].ID != "4" || other[3].ID != "5" {
		t.Errorf("WithAdded() results share storage: %q, %q", added[3].ID, other[3].ID)
	}

	removed := added.WithRemoved("2")
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, propertyIDs(added)); diff != "" {
		t.Errorf("WithRemoved() modified its receiver (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "3", "4"}, propertyIDs(removed)); diff != "" {
		t.Errorf("WithRemoved() mismatch (-want +got):\n%s", diff)
	}
	if got := removed.WithRemoved("missing"); len(got) != 3 {
		t.Errorf("WithRemoved(missing) len = %d, want 3", len(got))
	}
}

func propertyIDs(ps Properties) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestRenovations_ImmutableUpdates(t *testing.T) {
	rs := SampleRenovations()

	changed, err := rs.WithStatusChanged("2", InProgress)
	if err != nil {
		t.Fatalf("WithStatusChanged() error = %v", err)
	}
	if rs[1].Status != Pending {
		t.Errorf("WithStatusChanged() modified its receiver: %q", rs[1].Status)
	}
	if changed[1].Status != InProgress {
		t.Errorf("status = %q, want %q", changed[1].Status, InProgress)
	}

	// completed renovations can be reopened.
	reopened, err := rs.WithStatusChanged("3", Pending)
	if err != nil {
		t.Fatalf("WithStatusChanged() error = %v", err)
	}
	if reopened[2].Status != Pending || reopened[2].ActualCost == nil {
		t.Errorf("reopened = %+v, want pending with its actual cost kept", reopened[2])
	}

	costed, err := rs.WithActualCost("1", M(16250))
	if err != nil {
		t.Fatalf("WithActualCost() error = %v", err)
	}
	if rs[0].ActualCost != nil {
		t.Errorf("WithActualCost() modified its receiver")
	}
	if got := costed[0].Cost(); !got.Equal(M(16250)) {
		t.Errorf("Cost() = %v, want 16250", got)
	}

	if _, err := rs.WithStatusChanged("42", Completed); !errors.Is(err, ErrUnknownRenovation) {
		t.Errorf("WithStatusChanged(42) error = %v, want ErrUnknownRenovation", err)
	}

	without := rs.WithRemoved("3")
	if len(without) != 5 || len(rs) != 6 {
		t.Errorf("len(without), len(rs) = %d, %d, want 5, 6", len(without), len(rs))
	}
	if _, ok := without.Find("3"); ok {
		t.Errorf("renovation 3 still found after WithRemoved")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Errorf("ParseStatus(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Errorf("ParseStatus(done) succeeded")
	}
	if got := InProgress.Label(); got != "In Progress" {
		t.Errorf("InProgress.Label() = %q", got)
	}
}
