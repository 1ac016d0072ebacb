package crypto

import "testing"

func TestWordlist(t *testing.T) {
	if len(wordlist) == 0 {
		t.Fatal("word list is empty")
	}
	if len(wordlist) < MaxWordCount {
		t.Fatalf("word list has %d words, need at least %d", len(wordlist), MaxWordCount)
	}

	seen := make(map[string]bool, len(wordlist))
	for _, w := range wordlist {
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true

		if len(w) < 3 || len(w) > 8 {
			t.Errorf("word %q has invalid length %d", w, len(w))
		}
		for _, ch := range w {
			if ch < 'a' || ch > 'z' {
				t.Errorf("word %q contains non-lowercase character %q", w, ch)
				break
			}
		}
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	words := Words()
	if len(words) != WordlistSize() {
		t.Fatalf("Words() returned %d words, want %d", len(words), WordlistSize())
	}

	original := wordlist[0]
	words[0] = "changed"
	if wordlist[0] != original {
		t.Error("modifying Words() result changed the word list")
	}
}
