package apperrors

// 错误码
const (
	CodeUnknown           = 1000
	CodeInvalidMsg        = 1001
	CodeUnknownFaction    = 2001
	CodeUnknownCard       = 2002
	CodeCardNotOffered    = 2003
	CodeInvalidTransition = 2004
	CodeSessionDead       = 2005
	CodeNotStarted        = 2006
)

// GameError 游戏错误（引擎和适配层共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrUnknown           = &GameError{Code: CodeUnknown, Message: "未知错误"}
	ErrInvalidMsg        = &GameError{Code: CodeInvalidMsg, Message: "无效的消息格式"}
	ErrUnknownFaction    = &GameError{Code: CodeUnknownFaction, Message: "未知的阵营"}
	ErrUnknownCard       = &GameError{Code: CodeUnknownCard, Message: "卡牌不在卡池中"}
	ErrCardNotOffered    = &GameError{Code: CodeCardNotOffered, Message: "这张卡不在本回合场上"}
	ErrInvalidTransition = &GameError{Code: CodeInvalidTransition, Message: "当前阶段不能执行此操作"}
	ErrSessionDead       = &GameError{Code: CodeSessionDead, Message: "对局已结束"}
	ErrNotStarted        = &GameError{Code: CodeNotStarted, Message: "对局尚未开始"}
)
