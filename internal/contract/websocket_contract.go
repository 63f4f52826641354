package contract

type EventType string

const (
	EventPing EventType = "ping"

	EventSessionExpired EventType = "SESSION_EXPIRED"
	EventAck            EventType = "ACK"

	EventCompanyCreated EventType = "COMPANY_CREATED"
	EventCompanyUpdated EventType = "COMPANY_UPDATED"
	EventCompanyDeleted EventType = "COMPANY_DELETED"

	EventProjectCreated EventType = "PROJECT_CREATED"
	EventProjectUpdated EventType = "PROJECT_UPDATED"
	EventProjectDeleted EventType = "PROJECT_DELETED"

	EventInteractionCreated EventType = "INTERACTION_CREATED"
	EventInteractionDeleted EventType = "INTERACTION_DELETED"
)

// IncomingSocketMessage is used for messages we receive from the users.
type IncomingSocketMessage struct {
	Type EventType `json:"type"`
}

// OutgoingSocketMessage is what we send to the Client
type OutgoingSocketMessage struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data,omitempty"`
}
