package langid

import "testing"

func TestDetectGerman(t *testing.T) {
	d := Default()
	cases := []string{
		"Ich bin hier und das ist gut.",
		"Die Katze sitzt auf dem Tisch",
		"Straße",
	}
	for _, text := range cases {
		if got := d.Detect(text); got != "de" {
			t.Fatalf("Detect(%q) = %q, want de", text, got)
		}
	}
}

func TestDetectDefaultEnglish(t *testing.T) {
	d := Default()
	// No indicator substrings at all.
	if got := d.Detect("Hello world"); got != "en" {
		t.Fatalf("got %q, want en", got)
	}
}

func TestDetectEmptyReturnsDefault(t *testing.T) {
	if got := Default().Detect(""); got != "en" {
		t.Fatalf("empty input must return the default language, got %q", got)
	}
}

func TestDetectDeterministic(t *testing.T) {
	d := Default()
	const text = "Das Wetter ist heute schön."
	first := d.Detect(text)
	for i := 0; i < 10; i++ {
		if got := d.Detect(text); got != first {
			t.Fatalf("nondeterministic detection: %q then %q", first, got)
		}
	}
}

func TestDetectSubstringNotWordBoundary(t *testing.T) {
	// "wunderkind" contains "und" as a substring; the heuristic intentionally
	// matches anywhere, so this classifies as the alternate language.
	if got := Default().Detect("wunderkind"); got != "de" {
		t.Fatalf("substring matching expected, got %q", got)
	}
}

func TestDetectCustomPair(t *testing.T) {
	d := New("fr", "es", []string{"hola", "ñ"})
	if got := d.Detect("Bonjour tout le monde"); got != "fr" {
		t.Fatalf("got %q, want fr", got)
	}
	if got := d.Detect("Hola amigos"); got != "es" {
		t.Fatalf("got %q, want es", got)
	}
}
