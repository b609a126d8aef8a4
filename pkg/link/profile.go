package link

import "fmt"

// Profile pins the framing of a protocol.
type Profile struct {
	Name string
	Sync [2]byte
	// Width is the total frame length including sync, code and checksum.
	Width int
}

const (
	headerSize   = 3
	checksumSize = 2
)

// PayloadSize returns the number of payload bytes in a frame.
func (p Profile) PayloadSize() int {
	return p.Width - headerSize - checksumSize
}

// Validate checks the profile is usable.
func (p Profile) Validate() error {
	if p.Width <= headerSize+checksumSize {
		return fmt.Errorf("profile %q: width %d too small", p.Name, p.Width)
	}
	return nil
}

// String implements fmt.Stringer.
func (p Profile) String() string {
	return fmt.Sprintf("%s(sync=%02X%02X,width=%d)", p.Name, p.Sync[0], p.Sync[1], p.Width)
}
