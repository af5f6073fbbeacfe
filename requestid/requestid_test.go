package requestid

import "testing"

func TestDefault_StableAcrossCalls(t *testing.T) {
	first := Default().RequestID()
	second := Default().RequestID()

	if first == "" {
		t.Fatal("expected a non-empty request id")
	}
	if first != second {
		t.Errorf("request id changed between calls: %s != %s", first, second)
	}
}

func TestStatic(t *testing.T) {
	if got := Static("abc").RequestID(); got != "abc" {
		t.Errorf("unexpected id: %s", got)
	}
}
