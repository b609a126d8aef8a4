package link

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type parserOutcome struct {
	packets  []*Packet
	rejected []error
	dropped  int
}

func parseAll(p *Parser, in ...[]byte) (out parserOutcome) {
	for _, chunk := range in {
		for _, b := range chunk {
			pr := p.Parse(b)
			if pr.Packet != nil {
				out.packets = append(out.packets, pr.Packet)
			}
			if pr.Err != nil {
				out.rejected = append(out.rejected, pr.Err)
			}
			out.dropped += pr.Dropped
		}
	}
	return
}

func TestParser(t *testing.T) {
	reset := testFrame(0x5A, 0xD5, 0x01)
	confirm := testFrame(0xF1, 0x6C, 0x02)
	corrupted := testFrame(0xF1, 0x6C, 0x03)

	t.Run("back to back", func(t *testing.T) {
		out := parseAll(NewParser(testProfile), reset, confirm)
		require.Len(t, out.packets, 2)
		require.Equal(t, byte(0x5A), out.packets[0].Code)
		require.Equal(t, byte(0xF1), out.packets[1].Code)
		require.Empty(t, out.rejected)
		require.Zero(t, out.dropped)
	})

	t.Run("leading noise", func(t *testing.T) {
		out := parseAll(NewParser(testProfile), []byte{0x00, 0x12, 0xEB, 0x90, 0x00}, reset)
		require.Len(t, out.packets, 1)
		require.Equal(t, byte(0x5A), out.packets[0].Code)
		require.Equal(t, 5, out.dropped)
	})

	t.Run("repeated first sync byte", func(t *testing.T) {
		out := parseAll(NewParser(testProfile), []byte{0x90, 0x90}, reset)
		require.Len(t, out.packets, 1)
		require.Equal(t, 2, out.dropped)
	})

	t.Run("corrupted frame", func(t *testing.T) {
		p := NewParser(testProfile)
		out := parseAll(p, corrupted, reset)
		require.Len(t, out.rejected, 1)
		require.True(t, errors.Is(out.rejected[0], ErrBadChecksum))
		require.Len(t, out.packets, 1)
		require.Equal(t, byte(0x5A), out.packets[0].Code)
		require.False(t, p.Synced())
	})

	t.Run("truncated frame before a good one", func(t *testing.T) {
		p := NewParser(testProfile)
		out := parseAll(p, []byte{0x90, 0xEB, 0x44, 0x01}, reset)
		require.Len(t, out.rejected, 1)
		require.Len(t, out.packets, 1)
		require.Equal(t, byte(0x5A), out.packets[0].Code)
		require.Equal(t, 4, out.dropped)
		require.False(t, p.Synced())
	})

	t.Run("sync word at the end of a rejected frame", func(t *testing.T) {
		p := NewParser(testProfile)
		head := append([]byte{}, confirm[:39]...)
		head[38] = 0x90
		out := parseAll(p, head, reset[1:])
		require.Len(t, out.rejected, 1)
		require.Len(t, out.packets, 1)
		require.Equal(t, byte(0x5A), out.packets[0].Code)
		require.Equal(t, 38, out.dropped)
	})

	t.Run("split across chunks", func(t *testing.T) {
		p := NewParser(testProfile)
		out := parseAll(p, reset[:10])
		require.Empty(t, out.packets)
		require.True(t, p.Synced())
		out = parseAll(p, reset[10:])
		require.Len(t, out.packets, 1)
	})

	t.Run("reset discards partial frame", func(t *testing.T) {
		p := NewParser(testProfile)
		parseAll(p, confirm[:20])
		p.Reset()
		out := parseAll(p, reset)
		require.Len(t, out.packets, 1)
		require.Equal(t, byte(0x5A), out.packets[0].Code)
	})
}
