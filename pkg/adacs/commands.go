package adacs

import "github.com/robotalks/sat.go/pkg/link"

// The device acknowledges a command by echoing a frame with the same code.

// RequestReset is the first phase of a reset.
type RequestReset struct{}

// Packet implements link.Command.
func (RequestReset) Packet() *link.Packet { return &link.Packet{Code: CodeRequestReset} }

// AckCode implements link.AckedCommand.
func (RequestReset) AckCode() byte { return CodeRequestReset }

// ConfirmReset is the second phase of a reset.
type ConfirmReset struct{}

// Packet implements link.Command.
func (ConfirmReset) Packet() *link.Packet { return &link.Packet{Code: CodeConfirmReset} }

// AckCode implements link.AckedCommand.
func (ConfirmReset) AckCode() byte { return CodeConfirmReset }

// SetMode changes the ACS mode.
type SetMode struct {
	Mode   uint8
	Params [4]int16
}

// Packet implements link.Command.
func (c *SetMode) Packet() *link.Packet {
	f := link.Fields(nil).U8(c.Mode)
	for _, p := range c.Params {
		f = f.I16(p)
	}
	return &link.Packet{Code: CodeSetAcsMode, Payload: f}
}

// AckCode implements link.AckedCommand.
func (c *SetMode) AckCode() byte { return CodeSetAcsMode }

// SetModeSun changes the ACS mode with sun pointing parameters.
type SetModeSun struct {
	Mode           uint8
	SunAngleEnable int16
	SunRotAngle    float32
}

// Packet implements link.Command.
func (c *SetModeSun) Packet() *link.Packet {
	return &link.Packet{
		Code:    CodeSetAcsMode,
		Payload: link.Fields(nil).U8(c.Mode).I16(c.SunAngleEnable).F32(c.SunRotAngle),
	}
}

// AckCode implements link.AckedCommand.
func (c *SetModeSun) AckCode() byte { return CodeSetAcsMode }

// SetGPSTime sets the device clock in GPS seconds.
type SetGPSTime struct {
	Time uint32
}

// Packet implements link.Command.
func (c *SetGPSTime) Packet() *link.Packet {
	return &link.Packet{Code: CodeSetGPSTime, Payload: link.Fields(nil).U32(c.Time)}
}

// AckCode implements link.AckedCommand.
func (c *SetGPSTime) AckCode() byte { return CodeSetGPSTime }

// SetRV sets the ECI reference position and velocity at a GPS time.
type SetRV struct {
	Position [3]float32
	Velocity [3]float32
	Time     uint32
}

// Packet implements link.Command.
func (c *SetRV) Packet() *link.Packet {
	var f link.Fields
	for _, v := range c.Position {
		f = f.F32(v)
	}
	for _, v := range c.Velocity {
		f = f.F32(v)
	}
	return &link.Packet{Code: CodeSetRV, Payload: f.U32(c.Time)}
}

// AckCode implements link.AckedCommand.
func (c *SetRV) AckCode() byte { return CodeSetRV }
