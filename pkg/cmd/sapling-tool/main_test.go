package main

import "testing"

func TestRunWithNoArgsPrintsUsage(t *testing.T) {
	if code := run(nil); code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
}

func TestRunVersion(t *testing.T) {
	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	if code := run([]string{"bogus"}); code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
}

func TestRunDemo(t *testing.T) {
	if code := run([]string{"demo", "--value", "42", "--memo", "test"}); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
}
