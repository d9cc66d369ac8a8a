package scan

import (
	"encoding/binary"
	"testing"

	"github.com/gcndis/gcn"
	"github.com/gcndis/gcn/feats"
)

func TestWalk(t *testing.T) {
	// mov, an unmatchable word, endpgm
	words := []uint32{0x7e020302, 0xffffffff, 0xbf810000}
	code := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(code[i*4:], w)
	}

	d := gcn.NewDecoder(gcn.NewSubtarget(feats.GFX10))

	var names []string
	var errs int
	Walk(d, code, 0x1000, func(in *gcn.Inst, size int, err error) bool {
		if err != nil {
			errs++
			return true
		}
		names = append(names, in.Op.Name())
		return true
	})

	if errs != 1 {
		t.Fatalf("expected 1 decode failure, got %d", errs)
	}
	if len(names) != 2 || names[0] != "v_mov_b32" || names[1] != "s_endpgm" {
		t.Fatalf("decoded %v", names)
	}
}

func TestWalkStops(t *testing.T) {
	code := make([]byte, 16) // v_cndmask words, content irrelevant
	d := gcn.NewDecoder(gcn.NewSubtarget(feats.GFX9))

	n := 0
	Walk(d, code, 0, func(in *gcn.Inst, size int, err error) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("walk made %d steps, want 2", n)
	}
}

func TestIsKernelDescriptor(t *testing.T) {
	if !IsKernelDescriptor("my_kernel.kd") {
		t.Fatal("my_kernel.kd")
	}
	if IsKernelDescriptor("my_kernel") {
		t.Fatal("my_kernel")
	}
}

func TestSymbol(t *testing.T) {
	d := gcn.NewDecoder(gcn.NewSubtarget(feats.GFX9))

	if _, ok, _ := Symbol(d, "my_kernel", nil); ok {
		t.Fatal("code symbol treated as a descriptor")
	}

	// An all-zero 64-byte record is a valid descriptor on gfx9.
	dirs, ok, err := Symbol(d, "my_kernel.kd", make([]byte, gcn.KernelDescriptorSize))
	if !ok || err != nil {
		t.Fatalf("Symbol: ok=%v err=%v", ok, err)
	}
	if len(dirs) == 0 {
		t.Fatal("no directives decoded")
	}
}
