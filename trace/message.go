package trace

// MessageCap is the maximum number of bytes a Message can hold. Content
// beyond the capacity is cut off.
const MessageCap = 1024

// A Message is a fixed-capacity byte buffer used to stage a trace payload
// before it is handed to the sink. It never grows and never fails: writes
// that do not fit are silently truncated.
type Message struct {
	length int
	buffer [MessageCap]byte
}

// Write appends p to the message, truncating silently when the capacity is
// reached. It always reports success so that fmt.Fprintf on a Message cannot
// fail.
func (m *Message) Write(p []byte) (int, error) {
	if m.length == MessageCap {
		return len(p), nil
	}

	n := copy(m.buffer[m.length:], p)
	m.length += n

	return len(p), nil
}

// WriteString appends s to the message with the same truncation behavior as
// Write.
func (m *Message) WriteString(s string) {
	if m.length == MessageCap {
		return
	}

	m.length += copy(m.buffer[m.length:], s)
}

// Len returns the number of bytes currently in the message.
func (m *Message) Len() int {
	return m.length
}

// Bytes returns the content of the message. The slice aliases the message's
// internal buffer and is invalidated by the next write or reset.
func (m *Message) Bytes() []byte {
	return m.buffer[:m.length]
}

// String returns the content of the message as a string.
func (m *Message) String() string {
	return string(m.buffer[:m.length])
}

// Reset empties the message so it can be reused.
func (m *Message) Reset() {
	m.length = 0
}
