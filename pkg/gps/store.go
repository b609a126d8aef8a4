package gps

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/sat.go/pkg/link"
	"github.com/robotalks/sat.go/pkg/status"
)

// Raw codes of the default lock status.
const (
	defaultTimeStatus     uint8  = 20 // UNKNOWN
	defaultSolutionStatus uint32 = 1  // INSUFFICIENT_OBS
	defaultPosVelType     uint32 = 0  // NONE
)

// DefaultStaleAfter is the default age after which telemetry is stale.
const DefaultStaleAfter = 10 * time.Second

// MaxErrorEvents is the number of error events kept.
const MaxErrorEvents = 16

// LockStatus is the state of the latest nominal frame, in raw codes.
type LockStatus struct {
	TimeStatus     uint8
	Time           OEMTime
	PositionStatus uint32
	PositionType   uint32
	VelocityStatus uint32
	VelocityType   uint32
}

// DefaultLockStatus is the lock status before any telemetry.
func DefaultLockStatus() LockStatus {
	return LockStatus{
		TimeStatus:     defaultTimeStatus,
		PositionStatus: defaultSolutionStatus,
		PositionType:   defaultPosVelType,
		VelocityStatus: defaultSolutionStatus,
		VelocityType:   defaultPosVelType,
	}
}

// RefTimeStatus decodes TimeStatus.
func (s LockStatus) RefTimeStatus() status.RefTimeStatus {
	return status.RefTimeStatusFrom(s.TimeStatus)
}

// Position decodes the position status and type.
func (s LockStatus) Position() (status.SolutionStatus, status.PosVelType) {
	return status.SolutionStatusFrom(s.PositionStatus), status.PosVelTypeFrom(s.PositionType)
}

// Velocity decodes the velocity status and type.
func (s LockStatus) Velocity() (status.SolutionStatus, status.PosVelType) {
	return status.SolutionStatusFrom(s.VelocityStatus), status.PosVelTypeFrom(s.VelocityType)
}

// LockInfo is the last known good fix.
type LockInfo struct {
	// Time when Position or Velocity was last updated.
	Time     OEMTime
	Position [3]float64
	Velocity [3]float64
}

// SystemStatus is the receiver status with errors.
// Status is ReceiverStatusAll when it's not known.
type SystemStatus struct {
	Status status.ReceiverStatusFlags
	Errors []string
}

// VersionInfo lists the components of the receiver.
type VersionInfo struct {
	NumComponents int
	Components    []Component
}

// Snapshot is a consistent copy of the store.
type Snapshot struct {
	LockStatus   LockStatus
	LockInfo     LockInfo
	SystemStatus SystemStatus
	Version      *VersionInfo
	// Updated is when the last nominal frame arrived, zero if never.
	Updated time.Time
	Fresh   bool
}

// Store keeps the receiver state decoded from telemetry.
// It's the link.PacketHandler of the driver.
type Store struct {
	StaleAfter time.Duration

	lockStatus LockStatus
	lockInfo   LockInfo
	rxStatus   status.ReceiverStatusFlags
	updated    time.Time
	version    *VersionInfo
	components []Component
	errors     []string
	lock       sync.RWMutex

	now func() time.Time
}

// NewStore creates a Store with default state.
func NewStore() *Store {
	return &Store{
		StaleAfter: DefaultStaleAfter,
		lockStatus: DefaultLockStatus(),
		now:        time.Now,
	}
}

// HandlePacket implements link.PacketHandler.
func (s *Store) HandlePacket(pkt *link.Packet) bool {
	switch pkt.Code {
	case MsgNominal:
		s.UpdateNominal(DecodeNominal(pkt.Payload))
	case MsgVersion:
		s.UpdateComponent(DecodeComponent(pkt.Payload))
	case MsgErrorEvent:
		s.AddErrorEvent(DecodeErrorEvent(pkt.Payload))
	default:
		return false
	}
	return true
}

// UpdateNominal applies a nominal frame. The lock status is replaced,
// the lock info only takes computed solutions.
func (s *Store) UpdateNominal(n Nominal) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.lockStatus = LockStatus{
		TimeStatus:     n.TimeStatus,
		Time:           n.Time,
		PositionStatus: n.PositionStatus,
		PositionType:   n.PositionType,
		VelocityStatus: n.VelocityStatus,
		VelocityType:   n.VelocityType,
	}
	if status.SolutionStatusFrom(n.PositionStatus) == status.SolComputed {
		s.lockInfo.Position = n.Position
		s.lockInfo.Time = n.Time
	}
	if status.SolutionStatusFrom(n.VelocityStatus) == status.SolComputed {
		s.lockInfo.Velocity = n.Velocity
		s.lockInfo.Time = n.Time
	}
	s.rxStatus = n.ReceiverStatus
	s.updated = s.now()
}

// UpdateComponent collects version components. The version info is
// replaced when all components have arrived in order.
func (s *Store) UpdateComponent(c Component) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if c.Index == 0 {
		s.components = s.components[:0]
	}
	if c.Count == 0 || int(c.Index) != len(s.components) ||
		(len(s.components) > 0 && s.components[0].Count != c.Count) {
		glog.Warningf("gps: version component %d/%d out of order, discarded", c.Index, c.Count)
		s.components = s.components[:0]
		return
	}
	s.components = append(s.components, c)
	if len(s.components) == int(c.Count) {
		s.version = &VersionInfo{
			NumComponents: int(c.Count),
			Components:    append([]Component(nil), s.components...),
		}
		s.components = s.components[:0]
		glog.Infof("gps: version info updated, %d components", c.Count)
	}
}

// AddErrorEvent records an error event, keeping the latest MaxErrorEvents.
func (s *Store) AddErrorEvent(e ErrorEvent) {
	msg := fmt.Sprintf("event %d: %s", e.ID, e.Message)
	glog.Warningf("gps: %s", msg)
	s.lock.Lock()
	defer s.lock.Unlock()
	s.errors = append(s.errors, msg)
	if n := len(s.errors) - MaxErrorEvents; n > 0 {
		s.errors = append(s.errors[:0], s.errors[n:]...)
	}
}

// LockStatus returns the latest lock status.
func (s *Store) LockStatus() LockStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.lockStatus
}

// LockInfo returns the last known good fix.
func (s *Store) LockInfo() LockInfo {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.lockInfo
}

// Version returns the version info, nil if not received.
func (s *Store) Version() *VersionInfo {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.version
}

// Fresh tells if a nominal frame arrived within StaleAfter.
func (s *Store) Fresh() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.freshLocked()
}

// SystemStatus returns the receiver status and recent errors.
func (s *Store) SystemStatus() SystemStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.systemStatusLocked()
}

// Snapshot returns a consistent copy of the state.
func (s *Store) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Snapshot{
		LockStatus:   s.lockStatus,
		LockInfo:     s.lockInfo,
		SystemStatus: s.systemStatusLocked(),
		Version:      s.version,
		Updated:      s.updated,
		Fresh:        s.freshLocked(),
	}
}

func (s *Store) freshLocked() bool {
	if s.updated.IsZero() {
		return false
	}
	return s.StaleAfter <= 0 || s.now().Sub(s.updated) <= s.StaleAfter
}

func (s *Store) systemStatusLocked() SystemStatus {
	st := SystemStatus{Status: s.rxStatus}
	switch {
	case s.updated.IsZero():
		st.Status = status.ReceiverStatusAll
		st.Errors = append(st.Errors, "no telemetry received")
	case !s.freshLocked():
		st.Status = status.ReceiverStatusAll
		st.Errors = append(st.Errors, fmt.Sprintf("telemetry stale, last received %s ago",
			s.now().Sub(s.updated).Truncate(time.Millisecond)))
	}
	st.Errors = append(st.Errors, s.errors...)
	return st
}
