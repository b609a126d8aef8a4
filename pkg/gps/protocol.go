// Package gps drives an OEM6 class GPS receiver over its framed serial
// link.
package gps

import "github.com/robotalks/sat.go/pkg/link"

// Profile is the framing of the GPS link.
var Profile = link.Profile{
	Name:  "gps",
	Sync:  [2]byte{0xAA, 0x44},
	Width: 128,
}

// Command codes. The acknowledgement of a command has AckFlag set.
const (
	CodeLog      byte = 0x01
	CodeUnlog    byte = 0x02
	CodeUnlogAll byte = 0x03

	AckFlag byte = 0x80
)

// Log messages, also the codes of the frames carrying them.
const (
	MsgNominal    byte = 0x10
	MsgVersion    byte = 0x11
	MsgErrorEvent byte = 0x12
)

// AckOK is the response id of a positive acknowledgement.
const AckOK uint32 = 1

// Trigger tells when the receiver generates a log.
type Trigger uint8

// Log triggers.
const (
	OnNew Trigger = iota
	OnChanged
	OnTime
	OnNext
	Once
	OnMark
)
