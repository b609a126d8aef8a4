package status

import (
	"fmt"
	"math/bits"
	"strings"
)

// ReceiverStatusFlags is the receiver status word.
type ReceiverStatusFlags uint32

// Receiver status bits.
const (
	ErrorFlag ReceiverStatusFlags = 1 << iota
	TemperatureWarning
	VoltageSupplyWarning
	AntennaNotPowered
	LNAFailure
	AntennaOpen
	AntennaShortened
	CPUOverload
	COM1BufferOverrun
	COM2BufferOverrun
	COM3BufferOverrun
	LinkOverrun
	_
	AuxTransmitOverrun
	AGCOutOfRange
	_
	INSReset
	_
	GPSAlmanacInvalid
	PositionSolutionInvalid
	PositionFixed
	ClockSteeringDisabled
	ClockModelInvalid
	ExternalOscillatorLocked
	SoftwareResourceWarning
	_
	_
	_
	_
	Auxiliary3StatusEvent
	Auxiliary2StatusEvent
	Auxiliary1StatusEvent
)

// ReceiverStatusAll has every defined flag set. It's reported when no
// fresh status is available.
const ReceiverStatusAll = ErrorFlag | TemperatureWarning | VoltageSupplyWarning |
	AntennaNotPowered | LNAFailure | AntennaOpen | AntennaShortened | CPUOverload |
	COM1BufferOverrun | COM2BufferOverrun | COM3BufferOverrun | LinkOverrun |
	AuxTransmitOverrun | AGCOutOfRange | INSReset | GPSAlmanacInvalid |
	PositionSolutionInvalid | PositionFixed | ClockSteeringDisabled |
	ClockModelInvalid | ExternalOscillatorLocked | SoftwareResourceWarning |
	Auxiliary3StatusEvent | Auxiliary2StatusEvent | Auxiliary1StatusEvent

var receiverStatusNames = map[ReceiverStatusFlags]string{
	ErrorFlag:                "ERROR_FLAG",
	TemperatureWarning:       "TEMPERATURE_WARNING",
	VoltageSupplyWarning:     "VOLTAGE_SUPPLY_WARNING",
	AntennaNotPowered:        "ANTENNA_NOT_POWERED",
	LNAFailure:               "LNA_FAILURE",
	AntennaOpen:              "ANTENNA_OPEN",
	AntennaShortened:         "ANTENNA_SHORTENED",
	CPUOverload:              "CPU_OVERLOAD",
	COM1BufferOverrun:        "COM1_BUFFER_OVERRUN",
	COM2BufferOverrun:        "COM2_BUFFER_OVERRUN",
	COM3BufferOverrun:        "COM3_BUFFER_OVERRUN",
	LinkOverrun:              "LINK_OVERRUN",
	AuxTransmitOverrun:       "AUX_TRANSMIT_OVERRUN",
	AGCOutOfRange:            "AGC_OUT_OF_RANGE",
	INSReset:                 "INS_RESET",
	GPSAlmanacInvalid:        "GPS_ALMANAC_INVALID",
	PositionSolutionInvalid:  "POSITION_SOLUTION_INVALID",
	PositionFixed:            "POSITION_FIXED",
	ClockSteeringDisabled:    "CLOCK_STEERING_DISABLED",
	ClockModelInvalid:        "CLOCK_MODEL_INVALID",
	ExternalOscillatorLocked: "EXTERNAL_OSCILLATOR_LOCKED",
	SoftwareResourceWarning:  "SOFTWARE_RESOURCE_WARNING",
	Auxiliary3StatusEvent:    "AUXILIARY3_STATUS_EVENT",
	Auxiliary2StatusEvent:    "AUXILIARY2_STATUS_EVENT",
	Auxiliary1StatusEvent:    "AUXILIARY1_STATUS_EVENT",
}

// Has tells if all bits of flag are set.
func (f ReceiverStatusFlags) Has(flag ReceiverStatusFlags) bool {
	return f&flag == flag
}

// Names lists the set flags from the lowest bit.
// Undefined bits are named BIT_n.
func (f ReceiverStatusFlags) Names() []string {
	names := make([]string, 0, bits.OnesCount32(uint32(f)))
	for v := uint32(f); v != 0; v &= v - 1 {
		n := bits.TrailingZeros32(v)
		if name, ok := receiverStatusNames[ReceiverStatusFlags(1)<<uint(n)]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("BIT_%d", n))
		}
	}
	return names
}

// String implements fmt.Stringer.
func (f ReceiverStatusFlags) String() string {
	if f == 0 {
		return "NONE"
	}
	return strings.Join(f.Names(), "|")
}
