package capacity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectDefaults(t *testing.T) {
	p := Project(20, 5, 15)
	if p.AppointmentsPerHour != 4 {
		t.Fatalf("expected 4 slots per hour, got %d", p.AppointmentsPerHour)
	}
	if p.AveragePerHour != 2 {
		t.Fatalf("expected average of 2, got %d", p.AveragePerHour)
	}
	if len(p.Buckets) != 11 {
		t.Fatalf("expected 11 hourly buckets, got %d", len(p.Buckets))
	}

	want8 := Bucket{Hour: 8, Available: 1, Scheduled: 1, MaxCapacity: 5}
	if diff := cmp.Diff(want8, p.Buckets[0]); diff != "" {
		t.Fatalf("off-peak bucket mismatch (-want +got):\n%s", diff)
	}
	want12 := Bucket{Hour: 12, Available: 1, Scheduled: 1, MaxCapacity: 5, Peak: true}
	if diff := cmp.Diff(want12, p.Buckets[4]); diff != "" {
		t.Fatalf("peak bucket mismatch (-want +got):\n%s", diff)
	}
	if last := p.Buckets[len(p.Buckets)-1]; last.Hour != 18 {
		t.Fatalf("window must end at 18, got %d", last.Hour)
	}
}

func TestProjectCapsAverageAtSimultaneous(t *testing.T) {
	p := Project(1000, 3, 5)
	if p.AveragePerHour != 3 {
		t.Fatalf("expected average capped at 3, got %d", p.AveragePerHour)
	}
	if p.AppointmentsPerHour != 12 {
		t.Fatalf("expected 12 slots per hour, got %d", p.AppointmentsPerHour)
	}
	for _, b := range p.Buckets {
		wantScheduled := 1
		if b.Peak {
			wantScheduled = 2
		}
		if b.Scheduled != wantScheduled || b.Available != 3-wantScheduled {
			t.Fatalf("hour %d: unexpected bucket %+v", b.Hour, b)
		}
		if b.Available+b.Scheduled != p.AveragePerHour {
			t.Fatalf("hour %d: load does not add up", b.Hour)
		}
	}
}

func TestProjectPeakHours(t *testing.T) {
	p := Project(100, 10, 30)
	var peaks []int
	for _, b := range p.Buckets {
		if b.Peak {
			peaks = append(peaks, b.Hour)
		}
	}
	if diff := cmp.Diff([]int{11, 12, 13, 14}, peaks); diff != "" {
		t.Fatalf("unexpected peak hours (-want +got):\n%s", diff)
	}
	if p.Buckets[3].Scheduled != 8 || p.Buckets[0].Scheduled != 5 {
		t.Fatalf("unexpected load split %+v / %+v", p.Buckets[3], p.Buckets[0])
	}
}

func TestProjectOptions(t *testing.T) {
	p := Project(50, 5, 20,
		WithOperatingWindow(Window{Start: 9, End: 12}),
		WithPeakWindow(Window{Start: 12, End: 12}),
		WithLoad(1, 0),
	)
	want := []Bucket{
		{Hour: 9, Available: 5, MaxCapacity: 5},
		{Hour: 10, Available: 5, MaxCapacity: 5},
		{Hour: 11, Available: 5, MaxCapacity: 5},
		{Hour: 12, Scheduled: 5, MaxCapacity: 5, Peak: true},
	}
	if diff := cmp.Diff(want, p.Buckets); diff != "" {
		t.Fatalf("unexpected buckets (-want +got):\n%s", diff)
	}
}

func TestProjectAverageFollowsOperatingWindow(t *testing.T) {
	cases := []struct {
		name   string
		window Window
		want   int
	}{
		{name: "four hours", window: Window{Start: 8, End: 12}, want: 5},
		{name: "default", window: DefaultOperating, want: 2},
		{name: "single hour", window: Window{Start: 9, End: 9}, want: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Project(20, 10, 15, WithOperatingWindow(tc.window))
			if p.AveragePerHour != tc.want {
				t.Fatalf("average per hour: want %d, got %d", tc.want, p.AveragePerHour)
			}
			if got := len(p.Buckets); got != tc.window.End-tc.window.Start+1 {
				t.Fatalf("expected one bucket per hour, got %d", got)
			}
		})
	}
}

func TestProjectDegenerateInputs(t *testing.T) {
	p := Project(0, 0, 0)
	if p.AppointmentsPerHour != 0 || p.AveragePerHour != 0 {
		t.Fatalf("expected empty load, got %+v", p)
	}
	for _, b := range p.Buckets {
		if b.Scheduled != 0 || b.Available != 0 {
			t.Fatalf("expected zeroed bucket, got %+v", b)
		}
	}
}

func TestProjectIgnoresInvalidOptions(t *testing.T) {
	p := Project(20, 5, 15, WithOperatingWindow(Window{Start: 20, End: 10}), WithLoad(2, -1))
	if len(p.Buckets) != 11 || p.Buckets[0].Hour != 8 {
		t.Fatalf("invalid window must be ignored, got %d buckets", len(p.Buckets))
	}
	if p.Buckets[4].Scheduled != 1 {
		t.Fatalf("invalid load must be ignored, got %+v", p.Buckets[4])
	}
}
