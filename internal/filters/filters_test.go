package filters

import (
	"strings"
	"testing"
)

func TestTooShort(t *testing.T) {
	if TooShort("ACGT", 0) {
		t.Error("minLength<=0 should disable the check")
	}
	if !TooShort("ACGT", 5) {
		t.Error("want too short")
	}
	if TooShort("ACGT", 4) {
		t.Error("equal length should pass")
	}
}

func TestMeanQuality(t *testing.T) {
	if got := MeanQuality(""); got != 0 {
		t.Errorf("MeanQuality(\"\") = %v, want 0", got)
	}
	qual := string([]byte{40, 40, 40, 40})
	if got := MeanQuality(qual); got != 40 {
		t.Errorf("MeanQuality = %v, want 40", got)
	}
}

func TestLowQuality(t *testing.T) {
	low := string([]byte{10, 10, 10})
	if LowQuality(low, 0) {
		t.Error("threshold<=0 should disable the check")
	}
	if !LowQuality(low, 20) {
		t.Error("want low quality")
	}
	high := string([]byte{40, 40, 40})
	if LowQuality(high, 20) {
		t.Error("want not low quality")
	}
}

func TestDustScoreHomopolymerExceedsRandom(t *testing.T) {
	homopolymer := strings.Repeat("A", 60)
	random := "ACGTGCATGCACGTAGCTAGCATGCATCGATCGATGCATCGATGCATGCATGCGATCGAT"
	if len(random) != len(homopolymer) {
		t.Fatalf("fixture length mismatch: %d vs %d", len(random), len(homopolymer))
	}
	hs := DustScore(homopolymer, 3)
	rs := DustScore(random, 3)
	if hs <= rs {
		t.Errorf("homopolymer DUST score %v should exceed random-looking score %v", hs, rs)
	}
}

func TestDustScoreShortSequence(t *testing.T) {
	if got := DustScore("AC", 3); got != 0 {
		t.Errorf("DustScore on sequence shorter than k = %v, want 0", got)
	}
}

func TestLowComplexity(t *testing.T) {
	homopolymer := strings.Repeat("G", 60)
	if LowComplexity(homopolymer, 3, 0) {
		t.Error("cutoff<=0 should disable the check")
	}
	if !LowComplexity(homopolymer, 3, 2) {
		t.Error("want low complexity for homopolymer at a low cutoff")
	}
	random := "ACGTGCATGCACGTAGCTAGCATGCATCGATCGATGCATCGATGCATGCATGCGATCGA"
	if LowComplexity(random, 3, 50) {
		t.Error("want not low complexity for a random-looking read at a high cutoff")
	}
}
