// Package scan walks a byte slice of GPU machine code, decoding one
// instruction at a time with forward progress guaranteed even over bytes no
// encoding matches.
package scan

import (
	"strings"

	"github.com/gcndis/gcn"
)

// Walk decodes instructions from code starting at addr until while returns
// false or the input is exhausted. Decode failures are passed to while with a
// nil instruction; the walk then skips the minimum forward step so a single
// bad word cannot stall it.
func Walk(d *gcn.Decoder, code []byte, addr uint64, while func(in *gcn.Inst, size int, err error) bool) {
	for len(code) > 0 {
		in, n, err := d.Decode(code, addr)
		if !while(in, n, err) {
			return
		}
		if n <= 0 {
			n = 4
		}
		if n > len(code) {
			n = len(code)
		}
		code = code[n:]
		addr += uint64(n)
	}
}

// IsKernelDescriptor reports whether a symbol names a kernel descriptor
// record rather than code.
func IsKernelDescriptor(sym string) bool {
	return strings.HasSuffix(sym, ".kd")
}

// Symbol decodes the bytes behind an object symbol: a kernel descriptor
// record for ".kd" symbols, otherwise nil directives and ok=false so the
// caller can Walk the bytes as code instead.
func Symbol(d *gcn.Decoder, sym string, data []byte) ([]gcn.Directive, bool, error) {
	if !IsKernelDescriptor(sym) {
		return nil, false, nil
	}
	dirs, err := d.DecodeKernelDescriptor(data)
	return dirs, true, err
}
