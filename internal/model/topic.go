package model

var ActivityCreatedTopic = "ACTIVITY_CREATED"

const ActivityCreatedOp = "activity_created"

// ActivityCreatedEvent is published for every activity generated by a thread
// lifecycle transition.
type ActivityCreatedEvent struct {
	Op         string `json:"op"`
	ID         string `json:"id"`
	Type       string `json:"type"`
	ReceiverID string `json:"receiverId"`
	SenderID   string `json:"senderId"`
	ThreadID   string `json:"threadId"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"createdAt"`
}
