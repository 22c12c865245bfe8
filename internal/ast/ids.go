package ast

type (
	StmtID       uint32
	ExprID       uint32
	DeclaratorID uint32
	PayloadID    uint32
)

const (
	NoStmtID       StmtID       = 0
	NoExprID       ExprID       = 0
	NoDeclaratorID DeclaratorID = 0
	NoPayloadID    PayloadID    = 0
)

func (id StmtID) IsValid() bool       { return id != NoStmtID }
func (id ExprID) IsValid() bool       { return id != NoExprID }
func (id DeclaratorID) IsValid() bool { return id != NoDeclaratorID }
func (id PayloadID) IsValid() bool    { return id != NoPayloadID }
