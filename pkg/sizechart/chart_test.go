package sizechart

import "testing"

func TestClassifyThresholds(t *testing.T) {
	chart := DefaultUK()

	tests := []struct {
		mm   float64
		want string
	}{
		{0, "5"},
		{210, "5"},
		{239.9, "5"},
		// Boundary values belong to the higher bucket: comparison is strict <.
		{240, "6"},
		{249.99, "6"},
		{250, "7"},
		{260, "8"},
		{270, "9"},
		{280, "10"},
		{279.999, "9"},
		{400, "10"},
	}
	for _, tt := range tests {
		if got := chart.Classify(tt.mm); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.mm, got, tt.want)
		}
	}
}

func TestBucketMonotonic(t *testing.T) {
	chart := DefaultUK()
	prev := -1
	for mm := 100.0; mm <= 400.0; mm += 0.5 {
		idx := chart.BucketIndex(mm)
		if idx < prev {
			t.Fatalf("bucket order decreased at %v mm: %d -> %d", mm, prev, idx)
		}
		prev = idx
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		chart   Chart
		wantErr bool
	}{
		{"default ok", *DefaultUK(), false},
		{"missing else", Chart{Name: "x", Buckets: []Bucket{{240, "5"}}}, true},
		{"no buckets", Chart{Name: "x", Final: "10"}, true},
		{"non-increasing", Chart{
			Name:    "x",
			Buckets: []Bucket{{250, "5"}, {240, "6"}},
			Final:   "10",
		}, true},
		{"duplicate threshold", Chart{
			Name:    "x",
			Buckets: []Bucket{{240, "5"}, {240, "6"}},
			Final:   "10",
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chart.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		label  string
		system System
		want   string
	}{
		{"5", SystemUK, "UK 5"},
		// US is the fixed UK+1 shift, preserved verbatim.
		{"5", SystemUS, "US 6"},
		{"10", SystemUS, "US 11"},
		{"5", SystemIND, "IND 5"},
		// Non-integer labels pass through untouched.
		{"10.5", SystemUS, "US 10.5"},
	}
	for _, tt := range tests {
		if got := Display(tt.label, tt.system); got != tt.want {
			t.Errorf("Display(%q, %v) = %q, want %q", tt.label, tt.system, got, tt.want)
		}
	}
}

func TestParseSystem(t *testing.T) {
	for _, s := range []string{"uk", "us", "ind", "UK", "US", "IND"} {
		if _, err := ParseSystem(s); err != nil {
			t.Errorf("ParseSystem(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseSystem("eu"); err == nil {
		t.Error("ParseSystem(\"eu\") should fail")
	}
}
