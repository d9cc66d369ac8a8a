package gcn

import "testing"

func TestRegString(t *testing.T) {
	cases := []struct {
		r    Reg
		want string
	}{
		{VReg(1, 12), "v12"},
		{VReg(2, 4), "v[4:5]"},
		{SReg(1, 0), "s0"},
		{SReg(4, 8), "s[8:11]"},
		{AReg(1, 3), "a3"},
		{TTmpReg(2, 4), "ttmp[4:5]"},
		{VReg16(5, false), "v5.l"},
		{VReg16(5, true), "v5.h"},
		{VCC, "vcc"},
		{VCC_LO, "vcc_lo"},
		{EXEC, "exec"},
		{M0, "m0"},
		{SGPR_NULL, "null"},
		{SCC, "scc"},
		{SRC_SHARED_BASE, "src_shared_base"},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Fatalf("Reg(%#x).String() = %q, want %q", uint32(c.r), got, c.want)
		}
	}
}

func TestRegAccessors(t *testing.T) {
	r := SReg(4, 8)
	if r.Family() != REG_SGPR || r.Num() != 8 || r.Dwords() != 4 {
		t.Fatalf("accessors: family %d num %d dwords %d", r.Family(), r.Num(), r.Dwords())
	}
	if !VReg16(0, true).HiHalf() || VReg16(0, false).HiHalf() {
		t.Fatal("HiHalf")
	}
}
