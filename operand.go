package gcn

import "fmt"

// Operand is implemented by all decoded operand types: Reg, Imm, Expr, and
// Bad.
type Operand interface {
	isOperand()
}

// Imm is an immediate operand. For inline constants the value carries the
// exact bit pattern at the operand width (inline floats included). Width is
// the operand width in bits, or 0 for bare encoding fields such as masks,
// selectors and offsets.
type Imm struct {
	Val   int64
	Width uint8
}

// Expr is a symbol reference produced for branch targets when the session's
// Symbolizer resolves the target address.
type Expr struct {
	Sym    string
	Target uint64
}

// Bad records an operand whose encoded value has no valid interpretation in
// the current subtarget. The surrounding instruction still decodes; a
// diagnostic is appended to Inst.Warns.
type Bad struct {
	Enc    uint32
	Reason string
}

func (Reg) isOperand()  {}
func (Imm) isOperand()  {}
func (Expr) isOperand() {}
func (Bad) isOperand()  {}

func (i Imm) String() string  { return fmt.Sprintf("%d", i.Val) }
func (e Expr) String() string { return e.Sym }
func (b Bad) String() string  { return fmt.Sprintf("bad(%#x: %s)", b.Enc, b.Reason) }
