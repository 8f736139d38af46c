package manager

import "testing"

func TestDetectReturnsCodeAndDisplayName(t *testing.T) {
	env := newTestEnv(t, nil)

	de := env.svc.Detect("Ich bin hier und das ist gut.")
	if de.DetectedLanguage != "de" || de.LanguageName != "German" || de.Confidence != "medium" {
		t.Fatalf("unexpected result: %+v", de)
	}

	en := env.svc.Detect("The quick brown fox.")
	if en.DetectedLanguage != "en" || en.LanguageName != "English" {
		t.Fatalf("unexpected result: %+v", en)
	}

	// Detection must not trigger lazy model initialization.
	if got := len(env.eng.loads); got != 0 {
		t.Fatalf("engine loads = %d, want 0", got)
	}
}
