package gps

import "github.com/robotalks/sat.go/pkg/link"

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func validateResponse(code byte, pkt *link.Packet) error {
	if resp := link.NewFieldReader(pkt.Payload).U32(); resp != AckOK {
		return &link.AckError{Code: code, Response: resp}
	}
	return nil
}

// Log requests the receiver to generate a log.
type Log struct {
	Message byte
	Trigger Trigger
	// Hold keeps the log through UnlogAll.
	Hold bool
	// Period and Offset in seconds, for OnTime.
	Period float64
	Offset float64
}

// Packet implements link.Command.
func (c *Log) Packet() *link.Packet {
	return &link.Packet{
		Code: CodeLog,
		Payload: link.Fields(nil).U8(c.Message).U8(uint8(c.Trigger)).
			U8(boolByte(c.Hold)).F64(c.Period).F64(c.Offset),
	}
}

// AckCode implements link.AckedCommand.
func (c *Log) AckCode() byte { return CodeLog | AckFlag }

// ValidateAck implements link.AckValidator.
func (c *Log) ValidateAck(pkt *link.Packet) error { return validateResponse(CodeLog, pkt) }

// Unlog stops a log.
type Unlog struct {
	Message byte
}

// Packet implements link.Command.
func (c *Unlog) Packet() *link.Packet {
	return &link.Packet{Code: CodeUnlog, Payload: link.Fields(nil).U8(c.Message)}
}

// AckCode implements link.AckedCommand.
func (c *Unlog) AckCode() byte { return CodeUnlog | AckFlag }

// ValidateAck implements link.AckValidator.
func (c *Unlog) ValidateAck(pkt *link.Packet) error { return validateResponse(CodeUnlog, pkt) }

// UnlogAll stops all logs. Held logs are stopped as well if Held is set.
type UnlogAll struct {
	Held bool
}

// Packet implements link.Command.
func (c *UnlogAll) Packet() *link.Packet {
	return &link.Packet{Code: CodeUnlogAll, Payload: link.Fields(nil).U8(boolByte(c.Held))}
}

// AckCode implements link.AckedCommand.
func (c *UnlogAll) AckCode() byte { return CodeUnlogAll | AckFlag }

// ValidateAck implements link.AckValidator.
func (c *UnlogAll) ValidateAck(pkt *link.Packet) error { return validateResponse(CodeUnlogAll, pkt) }

// Ack builds the acknowledgement frame for a command code.
func Ack(code byte, response uint32) *link.Packet {
	return &link.Packet{Code: code | AckFlag, Payload: link.Fields(nil).U32(response)}
}
