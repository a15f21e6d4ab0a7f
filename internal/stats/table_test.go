package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"#", "Status", "Words", "Test ID"}
	rows := [][]string{
		{"1", "success", "212", "TEST-1"},
		{"10", "failed", "0", "TEST-10"},
	}
	rightAlign := map[int]bool{0: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != " # Status  Words Test ID" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != " 1 success   212 TEST-1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "10 failed      0 TEST-10" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"日本", "x"}}, nil)
	if lines[0] != "A    B" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "日本 x" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Missing test disclaimer", 10); got != "Missing..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
