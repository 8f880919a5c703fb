package kafka

import "time"

// Message is the transport-level envelope handed to the producer.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}
