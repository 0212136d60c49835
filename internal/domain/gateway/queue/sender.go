package queue

// Sender publishes serialized events to a named queue.
type Sender interface {
	SendMessage(queueName string, body any) error
}
