package audio

import (
	"math"
	"testing"
	"time"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	rate := SampleRate
	tn := newTone(440, 100*time.Millisecond, rate)

	total, peak := drain(t, tn)
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("tone streamed %d samples, expected %d", total, rate.N(100*time.Millisecond))
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("tone peak %f outside (0.9, 1.0]", peak)
	}
	if tn.Err() != nil {
		t.Errorf("unexpected error: %v", tn.Err())
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := SampleRate
	d := 50 * time.Millisecond
	env := newEnvelope(newTone(440, d, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample %f, expected silence", buf[0][0])
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Errorf("last sample %f, expected near silence", buf[n-1][0])
	}
}

func TestWinChimeLength(t *testing.T) {
	rate := SampleRate
	total, peak := drain(t, WinChime(rate))

	expected := rate.N(ChimeLength())
	// Sequencing rounds each note separately
	if diff := total - expected; diff < -len(chimeNotes) || diff > len(chimeNotes) {
		t.Errorf("chime streamed %d samples, expected about %d", total, expected)
	}
	if peak == 0 {
		t.Error("chime is silent")
	}
	if peak > 1.0 {
		t.Errorf("chime clips: peak %f", peak)
	}
}

func TestWinChimeIsFresh(t *testing.T) {
	a, _ := drain(t, WinChime(SampleRate))
	b, _ := drain(t, WinChime(SampleRate))
	if a != b || a == 0 {
		t.Errorf("two chimes streamed %d and %d samples", a, b)
	}
}

func TestChimeLength(t *testing.T) {
	if ChimeLength() != 720*time.Millisecond {
		t.Errorf("ChimeLength() = %v, expected 720ms", ChimeLength())
	}
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer()
	if p.initialized {
		t.Fatal("new player should be disabled")
	}
	// Neither call touches the speaker before Init
	p.PlayWin()
	p.Close()
}
