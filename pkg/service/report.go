package service

import (
	"github.com/robotalks/sat.go/pkg/adacs"
	"github.com/robotalks/sat.go/pkg/gps"
	"github.com/robotalks/sat.go/pkg/link"
	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
)

func statsOf(stats link.Stats, lateAcks uint64) *pb.LinkStats {
	return &pb.LinkStats{
		Frames:    stats.Frames,
		Acks:      stats.Acks,
		Telemetry: stats.Telemetry,
		Unrouted:  stats.Unrouted,
		Rejected:  stats.Rejected,
		Dropped:   stats.Dropped,
		LateAcks:  lateAcks,
	}
}

func gpsTimeOf(t gps.OEMTime) *pb.GpsTime {
	return &pb.GpsTime{Week: uint32(t.Week), Ms: t.Ms}
}

func gpsSnapshotOf(snap gps.Snapshot) *pb.GpsSnapshot {
	ls := snap.LockStatus
	posStatus, posType := ls.Position()
	velStatus, velType := ls.Velocity()
	msg := &pb.GpsSnapshot{
		Power: snap.Fresh,
		LockStatus: &pb.GpsLockStatus{
			TimeStatus:     ls.RefTimeStatus().String(),
			Time:           gpsTimeOf(ls.Time),
			PositionStatus: posStatus.String(),
			PositionType:   posType.String(),
			VelocityStatus: velStatus.String(),
			VelocityType:   velType.String(),
		},
		LockInfo: &pb.GpsLockInfo{
			Time:     gpsTimeOf(snap.LockInfo.Time),
			Position: snap.LockInfo.Position[:],
			Velocity: snap.LockInfo.Velocity[:],
		},
		SystemStatus: &pb.GpsSystemStatus{
			Status: uint32(snap.SystemStatus.Status),
			Flags:  snap.SystemStatus.Status.Names(),
			Errors: snap.SystemStatus.Errors,
		},
		UpdatedMs: millis(snap.Updated),
	}
	if snap.Version != nil {
		for _, c := range snap.Version.Components {
			msg.Components = append(msg.Components, &pb.GpsComponent{
				Type:        c.Type,
				Model:       c.Model,
				SerialNum:   c.SerialNum,
				HwVersion:   c.HWVersion,
				SwVersion:   c.SWVersion,
				BootVersion: c.BootVersion,
				CompileDate: c.CompileDate,
				CompileTime: c.CompileTime,
			})
		}
	}
	return msg
}

func vec3(v [3]int16) []int32 {
	return []int32{int32(v[0]), int32(v[1]), int32(v[2])}
}

func adacsSnapshotOf(t adacs.Telemetry) *pb.AdacsSnapshot {
	std, imu := t.Standard, t.IMU
	return &pb.AdacsSnapshot{
		Standard: &pb.AdacsStandardTelemetry{
			GpsTime:         std.GPSTime,
			SubSec:          uint32(std.SubSec),
			ValidCmdCount:   uint32(std.ValidCmdCount),
			InvalidCmdCount: uint32(std.InvalidCmdCount),
			AcsMode:         uint32(std.AcsMode),
			AcsModeActive:   uint32(std.AcsModeActive),
			ParamDbFlag:     uint32(std.ParamDBFlag),
			Eclipse:         uint32(std.Eclipse),
			SunVector:       vec3(std.SunVector),
			MagneticField:   vec3(std.MagneticField),
			WheelSpeed:      vec3(std.WheelSpeed),
			UpdatedMs:       millis(t.StandardUpdated),
		},
		Imu: &pb.AdacsRawImu{
			Accel:     vec3(imu.Accel),
			Gyro:      vec3(imu.Gyro),
			GyroTemp:  int32(imu.GyroTemp),
			UpdatedMs: millis(t.IMUUpdated),
		},
	}
}
