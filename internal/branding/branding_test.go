package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "python-su" {
		t.Errorf("CLIName() = %q, want %q", got, "python-su")
	}
	if DisplayName() == "" {
		t.Error("DisplayName() should not be empty")
	}
	if Description() == "" {
		t.Error("Description() should not be empty")
	}
}
