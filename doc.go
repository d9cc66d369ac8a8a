// package gcn provides a GPU machine-code instruction decoder in Go
//
// usage example:
//
// 	package example
//
// 	import (
// 		"fmt"
//
// 		// Importing everything from the package into the current scope
// 		// makes for less noise:
// 		. "github.com/gcndis/gcn"
// 		"github.com/gcndis/gcn/feats"
// 	)
//
// 	func PrintKernel(code []byte) error {
// 		dec := NewDecoder(NewSubtarget(feats.GFX10))
//
// 		addr := uint64(0)
// 		for len(code) > 0 {
// 			in, n, err := dec.Decode(code, addr)
// 			if err != nil {
// 				return err
// 			}
//
// 			fmt.Printf("%#06x  %s", addr, in.Op.Name())
// 			for _, o := range in.Operands {
// 				fmt.Printf(" %v", o)
// 			}
// 			fmt.Println()
//
// 			code = code[n:]
// 			addr += uint64(n)
// 		}
// 		return nil
// 	}
//
// Each instruction decodes against the widest candidate encoding first: a
// 12-byte probe (on hardware with 12-byte forms), then 8-byte, then 4-byte.
// A Decoder is safe for concurrent use; all per-call state lives on the
// stack.
package gcn
