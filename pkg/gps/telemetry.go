package gps

import (
	"github.com/robotalks/sat.go/pkg/link"
	"github.com/robotalks/sat.go/pkg/status"
)

// Text field sizes of a version component.
const (
	versionFieldSize = 16
	dateFieldSize    = 12
)

// OEMTime is a GPS reference time.
type OEMTime struct {
	Week uint16
	Ms   uint32
}

// Nominal is the periodic position/velocity frame.
type Nominal struct {
	ReceiverStatus status.ReceiverStatusFlags
	TimeStatus     uint8
	Time           OEMTime
	PositionStatus uint32
	PositionType   uint32
	Position       [3]float64
	VelocityStatus uint32
	VelocityType   uint32
	Velocity       [3]float64
}

// Component describes one component of the receiver. Version logs carry
// one component per frame.
type Component struct {
	Index       uint8
	Count       uint8
	Type        uint32
	Model       string
	SerialNum   string
	HWVersion   string
	SWVersion   string
	BootVersion string
	CompileDate string
	CompileTime string
}

// ErrorEvent is an error reported by the receiver.
type ErrorEvent struct {
	ID      uint32
	Message string
}

func readVec3(r *link.FieldReader) (v [3]float64) {
	for i := range v {
		v[i] = r.F64()
	}
	return
}

func appendVec3(f link.Fields, v [3]float64) link.Fields {
	for _, n := range v {
		f = f.F64(n)
	}
	return f
}

// DecodeNominal decodes the payload of a nominal frame.
func DecodeNominal(payload []byte) Nominal {
	r := link.NewFieldReader(payload)
	var n Nominal
	n.ReceiverStatus = status.ReceiverStatusFlags(r.U32())
	n.TimeStatus = r.U8()
	n.Time.Week = r.U16()
	n.Time.Ms = r.U32()
	n.PositionStatus = r.U32()
	n.PositionType = r.U32()
	n.Position = readVec3(r)
	n.VelocityStatus = r.U32()
	n.VelocityType = r.U32()
	n.Velocity = readVec3(r)
	return n
}

// Encode builds the payload of the frame.
func (n *Nominal) Encode() link.Fields {
	f := link.Fields(nil).U32(uint32(n.ReceiverStatus)).U8(n.TimeStatus).
		U16(n.Time.Week).U32(n.Time.Ms).
		U32(n.PositionStatus).U32(n.PositionType)
	f = appendVec3(f, n.Position).U32(n.VelocityStatus).U32(n.VelocityType)
	return appendVec3(f, n.Velocity)
}

// DecodeComponent decodes the payload of a version frame.
func DecodeComponent(payload []byte) Component {
	r := link.NewFieldReader(payload)
	return Component{
		Index:       r.U8(),
		Count:       r.U8(),
		Type:        r.U32(),
		Model:       r.Text(versionFieldSize),
		SerialNum:   r.Text(versionFieldSize),
		HWVersion:   r.Text(versionFieldSize),
		SWVersion:   r.Text(versionFieldSize),
		BootVersion: r.Text(versionFieldSize),
		CompileDate: r.Text(dateFieldSize),
		CompileTime: r.Text(dateFieldSize),
	}
}

// Encode builds the payload of the frame.
func (c *Component) Encode() link.Fields {
	return link.Fields(nil).U8(c.Index).U8(c.Count).U32(c.Type).
		Text(c.Model, versionFieldSize).
		Text(c.SerialNum, versionFieldSize).
		Text(c.HWVersion, versionFieldSize).
		Text(c.SWVersion, versionFieldSize).
		Text(c.BootVersion, versionFieldSize).
		Text(c.CompileDate, dateFieldSize).
		Text(c.CompileTime, dateFieldSize)
}

// DecodeErrorEvent decodes the payload of an error event frame.
func DecodeErrorEvent(payload []byte) ErrorEvent {
	r := link.NewFieldReader(payload)
	e := ErrorEvent{ID: r.U32()}
	if n := len(payload) - 4; n > 0 {
		e.Message = r.Text(n)
	}
	return e
}

// Encode builds the payload of the frame.
func (e *ErrorEvent) Encode() link.Fields {
	return link.Fields(nil).U32(e.ID).Text(e.Message, Profile.PayloadSize()-4)
}
