package adacs

import (
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/link"
)

// Store keeps the latest telemetry. It's the link.PacketHandler of the
// driver.
type Store struct {
	telemetry Telemetry
	lock      sync.RWMutex

	now func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// HandlePacket implements link.PacketHandler.
func (s *Store) HandlePacket(pkt *link.Packet) bool {
	switch pkt.Code {
	case CodeStandardTelemetry:
		t := DecodeStandardTelemetry(pkt.Payload)
		s.lock.Lock()
		s.telemetry.Standard, s.telemetry.StandardUpdated = t, s.now()
		s.lock.Unlock()
		if glog.V(2) {
			glog.Infof("adacs telemetry: mode=%d active=%d valid=%d invalid=%d",
				t.AcsMode, t.AcsModeActive, t.ValidCmdCount, t.InvalidCmdCount)
		}
	case CodeRawIMU:
		imu := DecodeRawIMU(pkt.Payload)
		s.lock.Lock()
		s.telemetry.IMU, s.telemetry.IMUUpdated = imu, s.now()
		s.lock.Unlock()
	default:
		return false
	}
	return true
}

// Snapshot returns a copy of the latest telemetry.
func (s *Store) Snapshot() Telemetry {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.telemetry
}
