package gcnlookup

import (
	"testing"
)

func TestLookup(t *testing.T) {
	op, ok := Op("v_mov_b32")
	if !ok {
		t.Fatal("failed to find v_mov_b32")
	}
	if op.Name() != "v_mov_b32" {
		t.Fatalf("wrong op: %s", op.Name())
	}
	if _, ok = Op("V_MOV_B32"); !ok {
		t.Fatal("failed to find V_MOV_B32")
	}
	if _, ok = Op("no_such_op"); ok {
		t.Fatal("found a bogus mnemonic")
	}
}
