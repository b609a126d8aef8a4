package link

// Command is a request to be framed and sent.
type Command interface {
	Packet() *Packet
}

// AckedCommand is a Command expecting an acknowledgement frame.
type AckedCommand interface {
	Command
	// AckCode is the message code of the acknowledgement frame.
	AckCode() byte
}

// AckValidator is optionally implemented by AckedCommand to check the
// content of the acknowledgement, e.g. for negative acknowledgements.
type AckValidator interface {
	ValidateAck(*Packet) error
}

// PacketHandler is called when a packet is not an acknowledgement.
type PacketHandler interface {
	// HandlePacket returns false if the packet is not recognized.
	HandlePacket(*Packet) bool
}

// HandlePacketFunc is func type of PacketHandler.
type HandlePacketFunc func(*Packet) bool

// HandlePacket implements PacketHandler.
func (f HandlePacketFunc) HandlePacket(pkt *Packet) bool {
	return f(pkt)
}
