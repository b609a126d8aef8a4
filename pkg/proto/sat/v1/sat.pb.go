package v1

import "github.com/golang/protobuf/proto"

// LinkStats counts frames on a device link.
type LinkStats struct {
	Frames    uint64 `protobuf:"varint,1,opt,name=frames,proto3" json:"frames,omitempty"`
	Acks      uint64 `protobuf:"varint,2,opt,name=acks,proto3" json:"acks,omitempty"`
	Telemetry uint64 `protobuf:"varint,3,opt,name=telemetry,proto3" json:"telemetry,omitempty"`
	Unrouted  uint64 `protobuf:"varint,4,opt,name=unrouted,proto3" json:"unrouted,omitempty"`
	Rejected  uint64 `protobuf:"varint,5,opt,name=rejected,proto3" json:"rejected,omitempty"`
	Dropped   uint64 `protobuf:"varint,6,opt,name=dropped,proto3" json:"dropped,omitempty"`
	LateAcks  uint64 `protobuf:"varint,7,opt,name=late_acks,json=lateAcks,proto3" json:"late_acks,omitempty"`
}

func (m *LinkStats) Reset()         { *m = LinkStats{} }
func (m *LinkStats) String() string { return proto.CompactTextString(m) }
func (*LinkStats) ProtoMessage()    {}

func (m *LinkStats) GetFrames() uint64 {
	if m != nil {
		return m.Frames
	}
	return 0
}

func (m *LinkStats) GetAcks() uint64 {
	if m != nil {
		return m.Acks
	}
	return 0
}

func (m *LinkStats) GetTelemetry() uint64 {
	if m != nil {
		return m.Telemetry
	}
	return 0
}

func (m *LinkStats) GetUnrouted() uint64 {
	if m != nil {
		return m.Unrouted
	}
	return 0
}

func (m *LinkStats) GetRejected() uint64 {
	if m != nil {
		return m.Rejected
	}
	return 0
}

func (m *LinkStats) GetDropped() uint64 {
	if m != nil {
		return m.Dropped
	}
	return 0
}

func (m *LinkStats) GetLateAcks() uint64 {
	if m != nil {
		return m.LateAcks
	}
	return 0
}

// GpsTime is a GPS week and milliseconds into the week.
type GpsTime struct {
	Week uint32 `protobuf:"varint,1,opt,name=week,proto3" json:"week,omitempty"`
	Ms   uint32 `protobuf:"varint,2,opt,name=ms,proto3" json:"ms,omitempty"`
}

func (m *GpsTime) Reset()         { *m = GpsTime{} }
func (m *GpsTime) String() string { return proto.CompactTextString(m) }
func (*GpsTime) ProtoMessage()    {}

func (m *GpsTime) GetWeek() uint32 {
	if m != nil {
		return m.Week
	}
	return 0
}

func (m *GpsTime) GetMs() uint32 {
	if m != nil {
		return m.Ms
	}
	return 0
}

// GpsLockStatus is the decoded lock status of the receiver.
type GpsLockStatus struct {
	TimeStatus     string   `protobuf:"bytes,1,opt,name=time_status,json=timeStatus,proto3" json:"time_status,omitempty"`
	Time           *GpsTime `protobuf:"bytes,2,opt,name=time,proto3" json:"time,omitempty"`
	PositionStatus string   `protobuf:"bytes,3,opt,name=position_status,json=positionStatus,proto3" json:"position_status,omitempty"`
	PositionType   string   `protobuf:"bytes,4,opt,name=position_type,json=positionType,proto3" json:"position_type,omitempty"`
	VelocityStatus string   `protobuf:"bytes,5,opt,name=velocity_status,json=velocityStatus,proto3" json:"velocity_status,omitempty"`
	VelocityType   string   `protobuf:"bytes,6,opt,name=velocity_type,json=velocityType,proto3" json:"velocity_type,omitempty"`
}

func (m *GpsLockStatus) Reset()         { *m = GpsLockStatus{} }
func (m *GpsLockStatus) String() string { return proto.CompactTextString(m) }
func (*GpsLockStatus) ProtoMessage()    {}

func (m *GpsLockStatus) GetTimeStatus() string {
	if m != nil {
		return m.TimeStatus
	}
	return ""
}

func (m *GpsLockStatus) GetTime() *GpsTime {
	if m != nil {
		return m.Time
	}
	return nil
}

func (m *GpsLockStatus) GetPositionStatus() string {
	if m != nil {
		return m.PositionStatus
	}
	return ""
}

func (m *GpsLockStatus) GetPositionType() string {
	if m != nil {
		return m.PositionType
	}
	return ""
}

func (m *GpsLockStatus) GetVelocityStatus() string {
	if m != nil {
		return m.VelocityStatus
	}
	return ""
}

func (m *GpsLockStatus) GetVelocityType() string {
	if m != nil {
		return m.VelocityType
	}
	return ""
}

// GpsLockInfo is the last known good fix.
type GpsLockInfo struct {
	Time     *GpsTime  `protobuf:"bytes,1,opt,name=time,proto3" json:"time,omitempty"`
	Position []float64 `protobuf:"fixed64,2,rep,packed,name=position,proto3" json:"position,omitempty"`
	Velocity []float64 `protobuf:"fixed64,3,rep,packed,name=velocity,proto3" json:"velocity,omitempty"`
}

func (m *GpsLockInfo) Reset()         { *m = GpsLockInfo{} }
func (m *GpsLockInfo) String() string { return proto.CompactTextString(m) }
func (*GpsLockInfo) ProtoMessage()    {}

func (m *GpsLockInfo) GetTime() *GpsTime {
	if m != nil {
		return m.Time
	}
	return nil
}

func (m *GpsLockInfo) GetPosition() []float64 {
	if m != nil {
		return m.Position
	}
	return nil
}

func (m *GpsLockInfo) GetVelocity() []float64 {
	if m != nil {
		return m.Velocity
	}
	return nil
}

// GpsSystemStatus is the receiver status word with its flag names.
type GpsSystemStatus struct {
	Status uint32   `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Flags  []string `protobuf:"bytes,2,rep,name=flags,proto3" json:"flags,omitempty"`
	Errors []string `protobuf:"bytes,3,rep,name=errors,proto3" json:"errors,omitempty"`
}

func (m *GpsSystemStatus) Reset()         { *m = GpsSystemStatus{} }
func (m *GpsSystemStatus) String() string { return proto.CompactTextString(m) }
func (*GpsSystemStatus) ProtoMessage()    {}

func (m *GpsSystemStatus) GetStatus() uint32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *GpsSystemStatus) GetFlags() []string {
	if m != nil {
		return m.Flags
	}
	return nil
}

func (m *GpsSystemStatus) GetErrors() []string {
	if m != nil {
		return m.Errors
	}
	return nil
}

// GpsComponent is a component of the receiver version.
type GpsComponent struct {
	Type        uint32 `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	Model       string `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	SerialNum   string `protobuf:"bytes,3,opt,name=serial_num,json=serialNum,proto3" json:"serial_num,omitempty"`
	HwVersion   string `protobuf:"bytes,4,opt,name=hw_version,json=hwVersion,proto3" json:"hw_version,omitempty"`
	SwVersion   string `protobuf:"bytes,5,opt,name=sw_version,json=swVersion,proto3" json:"sw_version,omitempty"`
	BootVersion string `protobuf:"bytes,6,opt,name=boot_version,json=bootVersion,proto3" json:"boot_version,omitempty"`
	CompileDate string `protobuf:"bytes,7,opt,name=compile_date,json=compileDate,proto3" json:"compile_date,omitempty"`
	CompileTime string `protobuf:"bytes,8,opt,name=compile_time,json=compileTime,proto3" json:"compile_time,omitempty"`
}

func (m *GpsComponent) Reset()         { *m = GpsComponent{} }
func (m *GpsComponent) String() string { return proto.CompactTextString(m) }
func (*GpsComponent) ProtoMessage()    {}

func (m *GpsComponent) GetType() uint32 {
	if m != nil {
		return m.Type
	}
	return 0
}

func (m *GpsComponent) GetModel() string {
	if m != nil {
		return m.Model
	}
	return ""
}

func (m *GpsComponent) GetSerialNum() string {
	if m != nil {
		return m.SerialNum
	}
	return ""
}

func (m *GpsComponent) GetHwVersion() string {
	if m != nil {
		return m.HwVersion
	}
	return ""
}

func (m *GpsComponent) GetSwVersion() string {
	if m != nil {
		return m.SwVersion
	}
	return ""
}

func (m *GpsComponent) GetBootVersion() string {
	if m != nil {
		return m.BootVersion
	}
	return ""
}

func (m *GpsComponent) GetCompileDate() string {
	if m != nil {
		return m.CompileDate
	}
	return ""
}

func (m *GpsComponent) GetCompileTime() string {
	if m != nil {
		return m.CompileTime
	}
	return ""
}

// GpsSnapshot is the state of the receiver.
type GpsSnapshot struct {
	Power        bool             `protobuf:"varint,1,opt,name=power,proto3" json:"power,omitempty"`
	LockStatus   *GpsLockStatus   `protobuf:"bytes,2,opt,name=lock_status,json=lockStatus,proto3" json:"lock_status,omitempty"`
	LockInfo     *GpsLockInfo     `protobuf:"bytes,3,opt,name=lock_info,json=lockInfo,proto3" json:"lock_info,omitempty"`
	SystemStatus *GpsSystemStatus `protobuf:"bytes,4,opt,name=system_status,json=systemStatus,proto3" json:"system_status,omitempty"`
	Components   []*GpsComponent  `protobuf:"bytes,5,rep,name=components,proto3" json:"components,omitempty"`
	UpdatedMs    int64            `protobuf:"varint,6,opt,name=updated_ms,json=updatedMs,proto3" json:"updated_ms,omitempty"`
}

func (m *GpsSnapshot) Reset()         { *m = GpsSnapshot{} }
func (m *GpsSnapshot) String() string { return proto.CompactTextString(m) }
func (*GpsSnapshot) ProtoMessage()    {}

func (m *GpsSnapshot) GetPower() bool {
	if m != nil {
		return m.Power
	}
	return false
}

func (m *GpsSnapshot) GetLockStatus() *GpsLockStatus {
	if m != nil {
		return m.LockStatus
	}
	return nil
}

func (m *GpsSnapshot) GetLockInfo() *GpsLockInfo {
	if m != nil {
		return m.LockInfo
	}
	return nil
}

func (m *GpsSnapshot) GetSystemStatus() *GpsSystemStatus {
	if m != nil {
		return m.SystemStatus
	}
	return nil
}

func (m *GpsSnapshot) GetComponents() []*GpsComponent {
	if m != nil {
		return m.Components
	}
	return nil
}

func (m *GpsSnapshot) GetUpdatedMs() int64 {
	if m != nil {
		return m.UpdatedMs
	}
	return 0
}

// AdacsStandardTelemetry is the housekeeping telemetry of the ADACS.
type AdacsStandardTelemetry struct {
	GpsTime         uint32  `protobuf:"varint,1,opt,name=gps_time,json=gpsTime,proto3" json:"gps_time,omitempty"`
	SubSec          uint32  `protobuf:"varint,2,opt,name=sub_sec,json=subSec,proto3" json:"sub_sec,omitempty"`
	ValidCmdCount   uint32  `protobuf:"varint,3,opt,name=valid_cmd_count,json=validCmdCount,proto3" json:"valid_cmd_count,omitempty"`
	InvalidCmdCount uint32  `protobuf:"varint,4,opt,name=invalid_cmd_count,json=invalidCmdCount,proto3" json:"invalid_cmd_count,omitempty"`
	AcsMode         uint32  `protobuf:"varint,5,opt,name=acs_mode,json=acsMode,proto3" json:"acs_mode,omitempty"`
	AcsModeActive   uint32  `protobuf:"varint,6,opt,name=acs_mode_active,json=acsModeActive,proto3" json:"acs_mode_active,omitempty"`
	ParamDbFlag     uint32  `protobuf:"varint,7,opt,name=param_db_flag,json=paramDbFlag,proto3" json:"param_db_flag,omitempty"`
	Eclipse         uint32  `protobuf:"varint,8,opt,name=eclipse,proto3" json:"eclipse,omitempty"`
	SunVector       []int32 `protobuf:"zigzag32,9,rep,packed,name=sun_vector,json=sunVector,proto3" json:"sun_vector,omitempty"`
	MagneticField   []int32 `protobuf:"zigzag32,10,rep,packed,name=magnetic_field,json=magneticField,proto3" json:"magnetic_field,omitempty"`
	WheelSpeed      []int32 `protobuf:"zigzag32,11,rep,packed,name=wheel_speed,json=wheelSpeed,proto3" json:"wheel_speed,omitempty"`
	UpdatedMs       int64   `protobuf:"varint,12,opt,name=updated_ms,json=updatedMs,proto3" json:"updated_ms,omitempty"`
}

func (m *AdacsStandardTelemetry) Reset()         { *m = AdacsStandardTelemetry{} }
func (m *AdacsStandardTelemetry) String() string { return proto.CompactTextString(m) }
func (*AdacsStandardTelemetry) ProtoMessage()    {}

func (m *AdacsStandardTelemetry) GetGpsTime() uint32 {
	if m != nil {
		return m.GpsTime
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetSubSec() uint32 {
	if m != nil {
		return m.SubSec
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetValidCmdCount() uint32 {
	if m != nil {
		return m.ValidCmdCount
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetInvalidCmdCount() uint32 {
	if m != nil {
		return m.InvalidCmdCount
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetAcsMode() uint32 {
	if m != nil {
		return m.AcsMode
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetAcsModeActive() uint32 {
	if m != nil {
		return m.AcsModeActive
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetParamDbFlag() uint32 {
	if m != nil {
		return m.ParamDbFlag
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetEclipse() uint32 {
	if m != nil {
		return m.Eclipse
	}
	return 0
}

func (m *AdacsStandardTelemetry) GetSunVector() []int32 {
	if m != nil {
		return m.SunVector
	}
	return nil
}

func (m *AdacsStandardTelemetry) GetMagneticField() []int32 {
	if m != nil {
		return m.MagneticField
	}
	return nil
}

func (m *AdacsStandardTelemetry) GetWheelSpeed() []int32 {
	if m != nil {
		return m.WheelSpeed
	}
	return nil
}

func (m *AdacsStandardTelemetry) GetUpdatedMs() int64 {
	if m != nil {
		return m.UpdatedMs
	}
	return 0
}

// AdacsRawImu is the raw IMU telemetry.
type AdacsRawImu struct {
	Accel     []int32 `protobuf:"zigzag32,1,rep,packed,name=accel,proto3" json:"accel,omitempty"`
	Gyro      []int32 `protobuf:"zigzag32,2,rep,packed,name=gyro,proto3" json:"gyro,omitempty"`
	GyroTemp  int32   `protobuf:"zigzag32,3,opt,name=gyro_temp,json=gyroTemp,proto3" json:"gyro_temp,omitempty"`
	UpdatedMs int64   `protobuf:"varint,4,opt,name=updated_ms,json=updatedMs,proto3" json:"updated_ms,omitempty"`
}

func (m *AdacsRawImu) Reset()         { *m = AdacsRawImu{} }
func (m *AdacsRawImu) String() string { return proto.CompactTextString(m) }
func (*AdacsRawImu) ProtoMessage()    {}

func (m *AdacsRawImu) GetAccel() []int32 {
	if m != nil {
		return m.Accel
	}
	return nil
}

func (m *AdacsRawImu) GetGyro() []int32 {
	if m != nil {
		return m.Gyro
	}
	return nil
}

func (m *AdacsRawImu) GetGyroTemp() int32 {
	if m != nil {
		return m.GyroTemp
	}
	return 0
}

func (m *AdacsRawImu) GetUpdatedMs() int64 {
	if m != nil {
		return m.UpdatedMs
	}
	return 0
}

// AdacsSnapshot is the latest telemetry of the ADACS.
type AdacsSnapshot struct {
	Standard *AdacsStandardTelemetry `protobuf:"bytes,1,opt,name=standard,proto3" json:"standard,omitempty"`
	Imu      *AdacsRawImu            `protobuf:"bytes,2,opt,name=imu,proto3" json:"imu,omitempty"`
}

func (m *AdacsSnapshot) Reset()         { *m = AdacsSnapshot{} }
func (m *AdacsSnapshot) String() string { return proto.CompactTextString(m) }
func (*AdacsSnapshot) ProtoMessage()    {}

func (m *AdacsSnapshot) GetStandard() *AdacsStandardTelemetry {
	if m != nil {
		return m.Standard
	}
	return nil
}

func (m *AdacsSnapshot) GetImu() *AdacsRawImu {
	if m != nil {
		return m.Imu
	}
	return nil
}

// Telemetry is the message published periodically for a device.
// One of Gps and Adacs is set according to Device.
type Telemetry struct {
	Device      string         `protobuf:"bytes,1,opt,name=device,proto3" json:"device,omitempty"`
	Id          string         `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	TimestampMs int64          `protobuf:"varint,3,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	Stats       *LinkStats     `protobuf:"bytes,4,opt,name=stats,proto3" json:"stats,omitempty"`
	Gps         *GpsSnapshot   `protobuf:"bytes,5,opt,name=gps,proto3" json:"gps,omitempty"`
	Adacs       *AdacsSnapshot `protobuf:"bytes,6,opt,name=adacs,proto3" json:"adacs,omitempty"`
}

func (m *Telemetry) Reset()         { *m = Telemetry{} }
func (m *Telemetry) String() string { return proto.CompactTextString(m) }
func (*Telemetry) ProtoMessage()    {}

func (m *Telemetry) GetDevice() string {
	if m != nil {
		return m.Device
	}
	return ""
}

func (m *Telemetry) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Telemetry) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

func (m *Telemetry) GetStats() *LinkStats {
	if m != nil {
		return m.Stats
	}
	return nil
}

func (m *Telemetry) GetGps() *GpsSnapshot {
	if m != nil {
		return m.Gps
	}
	return nil
}

func (m *Telemetry) GetAdacs() *AdacsSnapshot {
	if m != nil {
		return m.Adacs
	}
	return nil
}

func init() {
	proto.RegisterType((*LinkStats)(nil), "sat.v1.LinkStats")
	proto.RegisterType((*GpsTime)(nil), "sat.v1.GpsTime")
	proto.RegisterType((*GpsLockStatus)(nil), "sat.v1.GpsLockStatus")
	proto.RegisterType((*GpsLockInfo)(nil), "sat.v1.GpsLockInfo")
	proto.RegisterType((*GpsSystemStatus)(nil), "sat.v1.GpsSystemStatus")
	proto.RegisterType((*GpsComponent)(nil), "sat.v1.GpsComponent")
	proto.RegisterType((*GpsSnapshot)(nil), "sat.v1.GpsSnapshot")
	proto.RegisterType((*AdacsStandardTelemetry)(nil), "sat.v1.AdacsStandardTelemetry")
	proto.RegisterType((*AdacsRawImu)(nil), "sat.v1.AdacsRawImu")
	proto.RegisterType((*AdacsSnapshot)(nil), "sat.v1.AdacsSnapshot")
	proto.RegisterType((*Telemetry)(nil), "sat.v1.Telemetry")
}
