package gcn

import "sort"

// A Symbolizer resolves branch targets to names. Lookup returns the symbol
// covering addr; Record is called for every branch target seen while
// decoding, whether or not a symbol covers it.
type Symbolizer interface {
	Lookup(addr uint64) (string, bool)
	Record(addr uint64)
}

// SymbolTable is a map-backed Symbolizer. The zero value is ready to use.
// It is not safe for concurrent use.
type SymbolTable struct {
	syms map[uint64]string
	refs map[uint64]struct{}
}

// Define associates a name with an address.
func (t *SymbolTable) Define(addr uint64, name string) {
	if t.syms == nil {
		t.syms = make(map[uint64]string)
	}
	t.syms[addr] = name
}

func (t *SymbolTable) Lookup(addr uint64) (string, bool) {
	s, ok := t.syms[addr]
	return s, ok
}

func (t *SymbolTable) Record(addr uint64) {
	if t.refs == nil {
		t.refs = make(map[uint64]struct{})
	}
	t.refs[addr] = struct{}{}
}

// Referenced returns every branch target recorded so far, in ascending
// address order. Useful for labeling a listing after a first decode pass.
func (t *SymbolTable) Referenced() []uint64 {
	addrs := make([]uint64, 0, len(t.refs))
	for a := range t.refs {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
