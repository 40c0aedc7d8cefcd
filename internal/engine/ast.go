package engine

// Expr is the interface all parsed expression nodes implement.
type Expr interface {
	exprNode()
}

// NumberLit is a numeric literal. Float modes populate Value; programmer
// mode populates Bits.
type NumberLit struct {
	Value float64
	Bits  uint64
}

// ConstRef references a named constant such as pi or e.
type ConstRef struct {
	Name string
}

// VarRef references the free variable of graphing mode.
type VarRef struct {
	Name string
}

// UnaryExpr applies a prefix operator.
type UnaryExpr struct {
	Op      tokenType // tokenMinus or tokenTilde
	Operand Expr
}

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	Op    tokenType
	Left  Expr
	Right Expr
}

// CallExpr applies a named function to its arguments.
type CallExpr struct {
	Name string
	Args []Expr
}

// FactorialExpr applies the postfix ! operator.
type FactorialExpr struct {
	Operand Expr
}

func (*NumberLit) exprNode()     {}
func (*ConstRef) exprNode()      {}
func (*VarRef) exprNode()        {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*CallExpr) exprNode()      {}
func (*FactorialExpr) exprNode() {}
