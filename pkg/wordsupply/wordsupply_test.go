package wordsupply

import "testing"

func TestLoadBase_DropsInvalidEntries(t *testing.T) {
	s := New()
	accepted := s.LoadBase([]Entry{
		{Text: "CAT", Quality: 0.5},
		{Text: "AB", Quality: 0.9},   // too short
		{Text: "dog3", Quality: 0.1}, // non-alphabetic
		{Text: "DOG", Quality: 0.8},
	})

	if accepted != 2 {
		t.Fatalf("accepted = %d, want 2", accepted)
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
}

func TestCandidates_SortedByQualityDescending(t *testing.T) {
	s := New()
	s.LoadBase([]Entry{
		{Text: "CAT", Quality: 0.2},
		{Text: "DOG", Quality: 0.9},
		{Text: "BAT", Quality: 0.5},
	})

	cands := s.Candidates(3)
	if len(cands) != 3 {
		t.Fatalf("len(Candidates(3)) = %d, want 3", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i-1].Quality < cands[i].Quality {
			t.Errorf("candidates not quality-descending at index %d", i)
		}
	}
	if cands[0].Text != "DOG" {
		t.Errorf("highest-quality candidate = %s, want DOG", cands[0].Text)
	}
}

func TestDeduplication(t *testing.T) {
	s := New()
	s.LoadBase([]Entry{{Text: "CAT", Quality: 0.5}})
	accepted := s.LoadBase([]Entry{{Text: "CAT", Quality: 0.9}})

	if accepted != 0 {
		t.Fatalf("accepted = %d, want 0 (duplicate)", accepted)
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
	entry, ok := s.Lookup("CAT")
	if !ok {
		t.Fatal("Lookup(\"CAT\") not found")
	}
	if entry.Quality != 0.5 {
		t.Errorf("Quality = %v, want 0.5 (first write wins)", entry.Quality)
	}
}

func TestLoadThemed_BoostsQuality(t *testing.T) {
	s := New()
	s.LoadThemed([]Entry{{Text: "ZEN", Quality: 0.5}}, 0.3)

	entry, ok := s.Lookup("ZEN")
	if !ok {
		t.Fatal("Lookup(\"ZEN\") not found")
	}
	if entry.Quality != 0.8 {
		t.Errorf("Quality = %v, want 0.8", entry.Quality)
	}
	if entry.Origin != OriginThemed {
		t.Errorf("Origin = %v, want %v", entry.Origin, OriginThemed)
	}
}

func TestAddOracle_TagsOrigin(t *testing.T) {
	s := New()
	s.AddOracle([]Entry{{Text: "GLUE", Quality: 0.4}})

	entry, ok := s.Lookup("GLUE")
	if !ok {
		t.Fatal("Lookup(\"GLUE\") not found")
	}
	if entry.Origin != OriginOracle {
		t.Errorf("Origin = %v, want %v", entry.Origin, OriginOracle)
	}
}

func TestCandidates_EmptyLengthBucket(t *testing.T) {
	s := New()
	if got := s.Candidates(7); got != nil {
		t.Errorf("Candidates(7) on empty supply = %v, want nil", got)
	}
}
