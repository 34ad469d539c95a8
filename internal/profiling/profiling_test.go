package profiling

import (
	"testing"
	"time"
)

func TestTopN(t *testing.T) {
	ResetFrame()
	Add("b", 2*time.Millisecond)
	Add("a", 4200*time.Microsecond)
	Add("c", 300*time.Microsecond)
	Add("c", 300*time.Microsecond)

	if got, want := TopN(2), "a:4.2ms, b:2.0ms"; got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if got, want := TopN(10), "a:4.2ms, b:2.0ms, c:0.6ms"; got != want {
		t.Errorf("TopN(10) = %q, want %q", got, want)
	}

	ResetFrame()
	if got := TopN(3); got != "" {
		t.Errorf("after reset TopN = %q, want empty", got)
	}
}

func TestTrack(t *testing.T) {
	ResetFrame()
	stop := Track("work")
	time.Sleep(time.Millisecond)
	stop()
	if d := Snapshot()["work"]; d < time.Millisecond {
		t.Errorf("tracked %v, want at least 1ms", d)
	}
}
