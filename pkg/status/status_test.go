package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolutionStatusFrom(t *testing.T) {
	require.Equal(t, SolComputed, SolutionStatusFrom(0))
	require.Equal(t, InsufficientObservations, SolutionStatusFrom(1))
	require.Equal(t, ResidualsTooLarge, SolutionStatusFrom(9))
	require.Equal(t, IntegrityWarning, SolutionStatusFrom(13))
	require.Equal(t, Unauthorized, SolutionStatusFrom(20))
	for _, code := range []uint32{10, 11, 12, 14, 17, 21, 0xFFFF, 0xFFFFFFFF} {
		require.Equalf(t, SolutionStatusUnknown, SolutionStatusFrom(code), "code %d", code)
	}
	require.Equal(t, "SOL_COMPUTED", SolComputed.String())
	require.Equal(t, "UNKNOWN", SolutionStatusUnknown.String())
	require.Equal(t, "SolutionStatus(99)", SolutionStatus(99).String())
}

func TestPosVelTypeFrom(t *testing.T) {
	require.Equal(t, PosVelNone, PosVelTypeFrom(0))
	require.Equal(t, PosVelDopplerVelocity, PosVelTypeFrom(8))
	require.Equal(t, PosVelNarrowInteger, PosVelTypeFrom(50))
	require.Equal(t, PosVelPPPBasic, PosVelTypeFrom(78))
	for _, code := range []uint32{3, 49, 73, 79, 1 << 31} {
		require.Equalf(t, PosVelTypeUnknown, PosVelTypeFrom(code), "code %d", code)
	}
	require.Equal(t, "NARROW_INT", PosVelNarrowInteger.String())
}

func TestRefTimeStatusFrom(t *testing.T) {
	require.Equal(t, TimeUnknown, RefTimeStatusFrom(20))
	require.Equal(t, TimeFineSteering, RefTimeStatusFrom(180))
	require.Equal(t, TimeSatTime, RefTimeStatusFrom(200))
	require.Equal(t, RefTimeStatusUnknown, RefTimeStatusFrom(0))
	require.Equal(t, RefTimeStatusUnknown, RefTimeStatusFrom(255))
	require.Equal(t, "FINESTEERING", TimeFineSteering.String())
	require.NotEqual(t, TimeUnknown.String(), RefTimeStatusUnknown.String())
}

func TestDecodeExhaustive(t *testing.T) {
	known := 0
	for code := 0; code < 256; code++ {
		require.NotPanics(t, func() {
			s := RefTimeStatusFrom(uint8(code))
			if s != RefTimeStatusUnknown {
				known++
			}
			require.NotEmpty(t, s.String())
			require.NotEmpty(t, SolutionStatusFrom(uint32(code)).String())
			require.NotEmpty(t, PosVelTypeFrom(uint32(code)).String())
		})
	}
	require.Equal(t, 11, known)

	// sampled 32-bit codes
	for code := uint64(0); code <= 0xFFFFFFFF; code += 0x00FEDCBA {
		require.NotEmpty(t, SolutionStatusFrom(uint32(code)).String())
		require.NotEmpty(t, PosVelTypeFrom(uint32(code)).String())
	}
}

func TestReceiverStatusFlags(t *testing.T) {
	require.Equal(t, ReceiverStatusFlags(0x800), LinkOverrun)
	require.Equal(t, ReceiverStatusFlags(0x2000), AuxTransmitOverrun)
	require.Equal(t, ReceiverStatusFlags(0x10000), INSReset)
	require.Equal(t, ReceiverStatusFlags(0x1000000), SoftwareResourceWarning)
	require.Equal(t, ReceiverStatusFlags(0x20000000), Auxiliary3StatusEvent)
	require.Equal(t, ReceiverStatusFlags(0x80000000), Auxiliary1StatusEvent)
	require.Equal(t, ReceiverStatusFlags(0xE1FD6FFF), ReceiverStatusAll)

	f := ErrorFlag | AntennaOpen | ReceiverStatusFlags(1<<12)
	require.True(t, f.Has(ErrorFlag))
	require.True(t, f.Has(ErrorFlag|AntennaOpen))
	require.False(t, f.Has(ErrorFlag|CPUOverload))
	require.Equal(t, []string{"ERROR_FLAG", "ANTENNA_OPEN", "BIT_12"}, f.Names())
	require.Equal(t, "ERROR_FLAG|ANTENNA_OPEN|BIT_12", f.String())
	require.Equal(t, "NONE", ReceiverStatusFlags(0).String())
	require.Empty(t, ReceiverStatusFlags(0).Names())
	require.Len(t, ReceiverStatusAll.Names(), 25)
	require.Len(t, ReceiverStatusFlags(0xFFFFFFFF).Names(), 32)
}
