package feats

import "testing"

func TestDefaults(t *testing.T) {
	if Defaults(GFX8)&WAVE32 != 0 {
		t.Fatal("gfx8 should not default to 32-wide wavefronts")
	}
	if Defaults(GFX10)&WAVE32 == 0 {
		t.Fatal("gfx10 should default to 32-wide wavefronts")
	}
	if Defaults(GFX11)&GDS != 0 {
		t.Fatal("gfx11 has no global data share")
	}
	if Defaults(GFX12)&ARCHITECTED_FLAT_SCRATCH == 0 {
		t.Fatal("gfx12 should default to architected flat scratch")
	}
}

func TestGenString(t *testing.T) {
	if GFX10.String() != "gfx10" {
		t.Fatalf("GFX10.String() = %q", GFX10.String())
	}
	if !(GFX8 < GFX9 && GFX9 < GFX10 && GFX10 < GFX11 && GFX11 < GFX12) {
		t.Fatal("generations must be ordered")
	}
}
