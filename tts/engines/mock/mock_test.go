package mock

import "testing"

func TestSynthesizeDeterministic(t *testing.T) {
	engine := New()
	if err := engine.Initialize("a"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	utterances, err := engine.Synthesize("abcd.", "af_heart", 1.0)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(utterances) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(utterances))
	}
	if got := len(utterances[0].Samples); got != 50 {
		t.Errorf("samples = %d, want 50", got)
	}
	if utterances[0].Graphemes != "abcd." {
		t.Errorf("graphemes = %q, want input text", utterances[0].Graphemes)
	}
}

func TestSynthesizeUtteranceSplit(t *testing.T) {
	engine := New()
	engine.UtterancesPerCall = 3
	if err := engine.Initialize("a"); err != nil {
		t.Fatal(err)
	}

	utterances, err := engine.Synthesize("abcdefgh", "v", 1.0)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(utterances) != 3 {
		t.Fatalf("expected 3 utterances, got %d", len(utterances))
	}

	var total int
	for _, u := range utterances {
		total += len(u.Samples)
	}
	if total != 80 {
		t.Errorf("total samples = %d, want 80", total)
	}
}

func TestSynthesizeRequiresInitialize(t *testing.T) {
	engine := New()
	if _, err := engine.Synthesize("text", "v", 1.0); err == nil {
		t.Error("expected error before Initialize")
	}
}

func TestFailureInjection(t *testing.T) {
	engine := New()
	engine.FailOnCall = 2
	if err := engine.Initialize("a"); err != nil {
		t.Fatal(err)
	}

	if _, err := engine.Synthesize("one", "v", 1.0); err != nil {
		t.Fatalf("first call should succeed: %v", err)
	}
	if _, err := engine.Synthesize("two", "v", 1.0); err == nil {
		t.Error("second call should fail")
	}
	if _, err := engine.Synthesize("three", "v", 1.0); err != nil {
		t.Errorf("third call should succeed: %v", err)
	}
	if engine.Calls() != 3 {
		t.Errorf("Calls = %d, want 3", engine.Calls())
	}
}

func TestAvailabilityAndShutdown(t *testing.T) {
	engine := New()
	if !engine.IsAvailable() {
		t.Error("engine should be available by default")
	}

	engine.Unavailable = true
	if engine.IsAvailable() {
		t.Error("engine should report unavailable")
	}

	if err := engine.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
	if !engine.WasShutdown() {
		t.Error("WasShutdown should report true")
	}
}
