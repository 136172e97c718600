package mq

// Event 是写操作完成后对外广播的领域事件
type Event struct {
	EventId    string `json:"event_id"`
	Type       string `json:"type"`     // routing key, 见 constants.Event*
	ActorId    string `json:"actor_id"` // 触发事件的用户
	TargetType string `json:"target_type"`
	TargetId   string `json:"target_id"`
	Active     bool   `json:"active"` // toggle 之后的状态
	Timestamp  int64  `json:"timestamp"`
}
