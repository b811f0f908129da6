package gedcom

import (
	"strconv"
	"strings"
	"testing"
)

func TestParseTree_Nesting(t *testing.T) {
	text := strings.Join([]string{
		"0 @I1@ INDI",
		"1 NAME John /Doe/",
		"1 BIRT",
		"2 DATE 2 JAN 1950",
		"2 PLAC Springfield",
		"0 @F1@ FAM",
		"1 HUSB @I1@",
	}, "\n")

	roots := ParseTree(text)
	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}

	indi := roots[0]
	if indi.Tag != "INDI" || indi.XrefID != "@I1@" {
		t.Errorf("root = %q %q, want INDI @I1@", indi.Tag, indi.XrefID)
	}
	if len(indi.Children) != 2 {
		t.Fatalf("INDI children = %d, want 2", len(indi.Children))
	}

	birt := indi.Child("BIRT")
	if birt == nil {
		t.Fatal("missing BIRT child")
	}
	if got := birt.ChildValue("DATE"); got != "2 JAN 1950" {
		t.Errorf("DATE = %q, want %q", got, "2 JAN 1950")
	}
	if got := birt.ChildValue("PLAC"); got != "Springfield" {
		t.Errorf("PLAC = %q, want %q", got, "Springfield")
	}

	fam := roots[1]
	if got := fam.ChildValue("HUSB"); got != "@I1@" {
		t.Errorf("HUSB = %q, want %q", got, "@I1@")
	}
}

func TestParseTree_SkipsMalformedLines(t *testing.T) {
	text := strings.Join([]string{
		"0 @I1@ INDI",
		"",
		"   ",
		"not a gedcom line",
		"x NAME broken level",
		"1 SEX M",
	}, "\n")

	roots := ParseTree(text)
	if len(roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(roots))
	}
	if got := roots[0].ChildValue("SEX"); got != "M" {
		t.Errorf("SEX = %q, want %q", got, "M")
	}
}

func TestParseTree_LevelRegressionClosesNodes(t *testing.T) {
	// The DATE at level 2 belongs to BIRT; the following level 1 line must
	// attach back to the individual, not to BIRT.
	text := strings.Join([]string{
		"0 @I1@ INDI",
		"1 BIRT",
		"2 DATE 1950",
		"1 FAMC @F1@",
	}, "\n")

	roots := ParseTree(text)
	if len(roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(roots))
	}
	if got := roots[0].ChildValue("FAMC"); got != "@F1@" {
		t.Errorf("FAMC = %q, want %q", got, "@F1@")
	}
	if birt := roots[0].Child("BIRT"); birt == nil || len(birt.Children) != 1 {
		t.Errorf("BIRT should hold exactly the DATE child")
	}
}

func TestParseTree_NegativeLevelTreatedAsTopLevel(t *testing.T) {
	text := strings.Join([]string{
		"0 @I1@ INDI",
		"1 SEX M",
		"-1 @I2@ INDI",
	}, "\n")

	roots := ParseTree(text)
	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}
	if roots[1].XrefID != "@I2@" {
		t.Errorf("second root = %q, want @I2@", roots[1].XrefID)
	}
}

func TestParseTree_DeepNestingNoOverflow(t *testing.T) {
	// Adversarial input: 100k levels of nesting must not blow the stack.
	var b strings.Builder
	b.WriteString("0 @I1@ INDI\n")
	for i := 1; i <= 100000; i++ {
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" NOTE deep\n")
	}

	roots := ParseTree(b.String())
	if len(roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(roots))
	}
}
