// Package adacs drives a MAI-400 class attitude determination and control
// system over its framed serial link.
package adacs

import "github.com/robotalks/sat.go/pkg/link"

// Profile is the framing of the ADACS link.
var Profile = link.Profile{
	Name:  "adacs",
	Sync:  [2]byte{0x90, 0xEB},
	Width: 40,
}

// Message codes.
const (
	CodeSetAcsMode   byte = 0x00
	CodeSetRV        byte = 0x41
	CodeSetGPSTime   byte = 0x44
	CodeRequestReset byte = 0x5A
	CodeConfirmReset byte = 0xF1

	CodeStandardTelemetry byte = 0x01
	CodeRawIMU            byte = 0x11
)
