package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgStartSession   MessageType = "start_session"   // 选择阵营开局
	MsgChooseCard     MessageType = "choose_card"     // 选择食物卡
	MsgAckHazard      MessageType = "ack_hazard"      // 确认掷硬币结果
	MsgAckEvent       MessageType = "ack_event"       // 确认事件卡
	MsgGetSnapshot    MessageType = "get_snapshot"    // 获取状态快照
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取生存排行榜
)

// 服务端 → 客户端 消息类型
const (
	MsgConnected      MessageType = "connected"       // 连接成功
	MsgSessionStarted MessageType = "session_started" // 开局成功
	MsgRoundStarted   MessageType = "round_started"   // 新回合开始
	MsgCardResolved   MessageType = "card_resolved"   // 选卡已结算
	MsgHazardPrompt   MessageType = "hazard_prompt"   // 掷硬币结果待确认
	MsgHazardResolved MessageType = "hazard_resolved" // 掷硬币确认完毕
	MsgEventTriggered MessageType = "event_triggered" // 事件卡触发待确认
	MsgSnapshot       MessageType = "snapshot"        // 状态快照
	MsgGameOver       MessageType = "game_over"       // 对局结束
	MsgLeaderboard    MessageType = "leaderboard"     // 排行榜数据
	MsgError          MessageType = "error"           // 错误
)

// Encode 序列化消息
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode 反序列化消息
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// NewMessage 创建一个新消息
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage 创建消息，失败时 panic
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// ParsePayload 解析消息的 Payload 到指定类型
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// NewErrorMessage 创建错误消息
func NewErrorMessage(code int, message string) *Message {
	return MustNewMessage(MsgError, ErrorPayload{
		Code:    code,
		Message: message,
	})
}
