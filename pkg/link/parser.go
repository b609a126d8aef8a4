package link

// Parser assembles frames from a byte stream.
type Parser struct {
	Profile Profile

	state parseState
	buf   []byte
}

// ParseResult indicates the result after one parsing step.
type ParseResult struct {
	// Packet is set when a complete frame is validated.
	Packet *Packet
	// Err is set when a complete frame is rejected.
	Err error
	// Dropped is the number of bytes discarded while hunting for sync.
	Dropped int
}

type parseState int

const (
	stateSync0 parseState = iota // waiting for the first sync byte
	stateSync1                   // waiting for the second sync byte
	stateBody                    // collecting code, payload and checksum
)

// NewParser creates a Parser for a profile.
func NewParser(profile Profile) *Parser {
	return &Parser{Profile: profile}
}

// Synced indicates the parser is in the middle of a frame.
func (p *Parser) Synced() bool {
	return p.state == stateBody
}

// Reset discards any partial frame.
func (p *Parser) Reset() {
	p.state = stateSync0
	p.buf = p.buf[:0]
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	switch p.state {
	case stateSync0:
		if b != p.Profile.Sync[0] {
			pr.Dropped = 1
			return
		}
		if p.buf == nil {
			p.buf = make([]byte, 0, p.Profile.Width)
		}
		p.buf = append(p.buf[:0], b)
		p.state = stateSync1
	case stateSync1:
		if b == p.Profile.Sync[1] {
			p.buf = append(p.buf, b)
			p.state = stateBody
			return
		}
		// the previous byte was noise, and so is b unless it starts over
		pr.Dropped = 1
		if b != p.Profile.Sync[0] {
			pr.Dropped++
			p.Reset()
		}
	case stateBody:
		p.buf = append(p.buf, b)
		if len(p.buf) < p.Profile.Width {
			return
		}
		pr.Packet, pr.Err = Decode(p.Profile, p.buf)
		if pr.Err != nil {
			pr.Dropped = p.resync()
			return
		}
		p.Reset()
	}
	return
}

// resync restarts parsing at the first sync word after the start of a
// rejected frame and returns the number of bytes skipped before it.
func (p *Parser) resync() (dropped int) {
	at := len(p.buf)
	for i := 1; i < len(p.buf); i++ {
		if p.buf[i] == p.Profile.Sync[0] && (i+1 == len(p.buf) || p.buf[i+1] == p.Profile.Sync[1]) {
			at = i
			break
		}
	}
	rest := append([]byte(nil), p.buf[at:]...)
	p.Reset()
	if len(rest) == 0 {
		return 0
	}
	// rest is shorter than a frame, so replaying it never completes one.
	dropped = at
	for _, b := range rest {
		dropped += p.Parse(b).Dropped
	}
	return
}
