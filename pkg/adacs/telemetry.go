package adacs

import (
	"time"

	"github.com/robotalks/sat.go/pkg/link"
)

// StandardTelemetry is the periodic housekeeping frame.
type StandardTelemetry struct {
	GPSTime         uint32
	SubSec          uint8
	ValidCmdCount   uint16
	InvalidCmdCount uint16
	AcsMode         uint8
	AcsModeActive   uint8
	ParamDBFlag     uint8
	Eclipse         uint8
	SunVector       [3]int16
	MagneticField   [3]int16
	WheelSpeed      [3]int16
}

// RawIMU is the raw inertial measurement frame.
type RawIMU struct {
	Accel    [3]int16
	Gyro     [3]int16
	GyroTemp int8
}

// Telemetry is the latest telemetry of the device.
type Telemetry struct {
	Standard        StandardTelemetry
	StandardUpdated time.Time
	IMU             RawIMU
	IMUUpdated      time.Time
}

func readVec3(r *link.FieldReader) (v [3]int16) {
	for i := range v {
		v[i] = r.I16()
	}
	return
}

// DecodeStandardTelemetry decodes the payload of a standard telemetry frame.
func DecodeStandardTelemetry(payload []byte) StandardTelemetry {
	r := link.NewFieldReader(payload)
	var t StandardTelemetry
	t.GPSTime = r.U32()
	t.SubSec = r.U8()
	t.ValidCmdCount = r.U16()
	t.InvalidCmdCount = r.U16()
	t.AcsMode = r.U8()
	t.AcsModeActive = r.U8()
	t.ParamDBFlag = r.U8()
	t.Eclipse = r.U8()
	t.SunVector = readVec3(r)
	t.MagneticField = readVec3(r)
	t.WheelSpeed = readVec3(r)
	return t
}

// Encode builds the payload of the frame, the inverse of
// DecodeStandardTelemetry.
func (t *StandardTelemetry) Encode() link.Fields {
	f := link.Fields(nil).U32(t.GPSTime).U8(t.SubSec).
		U16(t.ValidCmdCount).U16(t.InvalidCmdCount).
		U8(t.AcsMode).U8(t.AcsModeActive).U8(t.ParamDBFlag).U8(t.Eclipse)
	for _, vec := range [][3]int16{t.SunVector, t.MagneticField, t.WheelSpeed} {
		for _, v := range vec {
			f = f.I16(v)
		}
	}
	return f
}

// DecodeRawIMU decodes the payload of a raw IMU frame.
func DecodeRawIMU(payload []byte) RawIMU {
	r := link.NewFieldReader(payload)
	return RawIMU{
		Accel:    readVec3(r),
		Gyro:     readVec3(r),
		GyroTemp: r.I8(),
	}
}

// Encode builds the payload of the frame.
func (t *RawIMU) Encode() link.Fields {
	var f link.Fields
	for _, vec := range [][3]int16{t.Accel, t.Gyro} {
		for _, v := range vec {
			f = f.I16(v)
		}
	}
	return f.I8(t.GyroTemp)
}
