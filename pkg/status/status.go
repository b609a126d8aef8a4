// Package status decodes raw receiver status codes into typed values.
//
// Every decoder is total: codes missing from the tables map to the
// Unknown variant of the type so newer firmware never breaks decoding.
package status

import "fmt"

// SolutionStatus is the status of a position or velocity solution.
type SolutionStatus int

// Solution status values.
const (
	SolutionStatusUnknown SolutionStatus = iota
	SolComputed
	InsufficientObservations
	NoConvergence
	Singularity
	CovarianceTraceExceeded
	TestDistanceExceeded
	ColdStart
	HeightVelocityExceeded
	VarianceExceeded
	ResidualsTooLarge
	IntegrityWarning
	Pending
	InvalidFix
	Unauthorized
)

var solutionStatusCodes = map[uint32]SolutionStatus{
	0:  SolComputed,
	1:  InsufficientObservations,
	2:  NoConvergence,
	3:  Singularity,
	4:  CovarianceTraceExceeded,
	5:  TestDistanceExceeded,
	6:  ColdStart,
	7:  HeightVelocityExceeded,
	8:  VarianceExceeded,
	9:  ResidualsTooLarge,
	13: IntegrityWarning,
	18: Pending,
	19: InvalidFix,
	20: Unauthorized,
}

var solutionStatusNames = [...]string{
	SolutionStatusUnknown:    "UNKNOWN",
	SolComputed:              "SOL_COMPUTED",
	InsufficientObservations: "INSUFFICIENT_OBS",
	NoConvergence:            "NO_CONVERGENCE",
	Singularity:              "SINGULARITY",
	CovarianceTraceExceeded:  "COV_TRACE",
	TestDistanceExceeded:     "TEST_DIST",
	ColdStart:                "COLD_START",
	HeightVelocityExceeded:   "V_H_LIMIT",
	VarianceExceeded:         "VARIANCE",
	ResidualsTooLarge:        "RESIDUALS",
	IntegrityWarning:         "INTEGRITY_WARNING",
	Pending:                  "PENDING",
	InvalidFix:               "INVALID_FIX",
	Unauthorized:             "UNAUTHORIZED",
}

// SolutionStatusFrom decodes a raw solution status.
func SolutionStatusFrom(code uint32) SolutionStatus {
	return solutionStatusCodes[code]
}

// String implements fmt.Stringer.
func (s SolutionStatus) String() string {
	if s >= 0 && int(s) < len(solutionStatusNames) {
		return solutionStatusNames[s]
	}
	return fmt.Sprintf("SolutionStatus(%d)", int(s))
}

// PosVelType is the type of a position or velocity solution.
type PosVelType int

// Position/velocity types.
const (
	PosVelTypeUnknown PosVelType = iota
	PosVelNone
	PosVelFixedPos
	PosVelFixedHeight
	PosVelDopplerVelocity
	PosVelSingle
	PosVelPSRDiff
	PosVelWAAS
	PosVelPropagated
	PosVelOmnistar
	PosVelL1Float
	PosVelIonoFreeFloat
	PosVelNarrowFloat
	PosVelL1Integer
	PosVelNarrowInteger
	PosVelOmnistarHP
	PosVelOmnistarXP
	PosVelPPPConverging
	PosVelPPP
	PosVelOperational
	PosVelWarning
	PosVelOutOfBounds
	PosVelPPPBasicConverging
	PosVelPPPBasic
)

var posVelTypeCodes = map[uint32]PosVelType{
	0:  PosVelNone,
	1:  PosVelFixedPos,
	2:  PosVelFixedHeight,
	8:  PosVelDopplerVelocity,
	16: PosVelSingle,
	17: PosVelPSRDiff,
	18: PosVelWAAS,
	19: PosVelPropagated,
	20: PosVelOmnistar,
	32: PosVelL1Float,
	33: PosVelIonoFreeFloat,
	34: PosVelNarrowFloat,
	48: PosVelL1Integer,
	50: PosVelNarrowInteger,
	64: PosVelOmnistarHP,
	65: PosVelOmnistarXP,
	68: PosVelPPPConverging,
	69: PosVelPPP,
	70: PosVelOperational,
	71: PosVelWarning,
	72: PosVelOutOfBounds,
	77: PosVelPPPBasicConverging,
	78: PosVelPPPBasic,
}

var posVelTypeNames = [...]string{
	PosVelTypeUnknown:        "UNKNOWN",
	PosVelNone:               "NONE",
	PosVelFixedPos:           "FIXEDPOS",
	PosVelFixedHeight:        "FIXEDHEIGHT",
	PosVelDopplerVelocity:    "DOPPLER_VELOCITY",
	PosVelSingle:             "SINGLE",
	PosVelPSRDiff:            "PSRDIFF",
	PosVelWAAS:               "WAAS",
	PosVelPropagated:         "PROPAGATED",
	PosVelOmnistar:           "OMNISTAR",
	PosVelL1Float:            "L1_FLOAT",
	PosVelIonoFreeFloat:      "IONOFREE_FLOAT",
	PosVelNarrowFloat:        "NARROW_FLOAT",
	PosVelL1Integer:          "L1_INT",
	PosVelNarrowInteger:      "NARROW_INT",
	PosVelOmnistarHP:         "OMNISTAR_HP",
	PosVelOmnistarXP:         "OMNISTAR_XP",
	PosVelPPPConverging:      "PPP_CONVERGING",
	PosVelPPP:                "PPP",
	PosVelOperational:        "OPERATIONAL",
	PosVelWarning:            "WARNING",
	PosVelOutOfBounds:        "OUT_OF_BOUNDS",
	PosVelPPPBasicConverging: "PPP_BASIC_CONVERGING",
	PosVelPPPBasic:           "PPP_BASIC",
}

// PosVelTypeFrom decodes a raw position/velocity type.
func PosVelTypeFrom(code uint32) PosVelType {
	return posVelTypeCodes[code]
}

// String implements fmt.Stringer.
func (t PosVelType) String() string {
	if t >= 0 && int(t) < len(posVelTypeNames) {
		return posVelTypeNames[t]
	}
	return fmt.Sprintf("PosVelType(%d)", int(t))
}

// RefTimeStatus is the quality of the receiver's reference time.
type RefTimeStatus int

// Reference time status values. TimeUnknown is a status reported by the
// receiver, RefTimeStatusUnknown is for codes missing from the table.
const (
	RefTimeStatusUnknown RefTimeStatus = iota
	TimeUnknown
	TimeApproximate
	TimeCoarseAdjusting
	TimeCoarse
	TimeCoarseSteering
	TimeFreeWheeling
	TimeFineAdjusting
	TimeFine
	TimeFineBackupSteering
	TimeFineSteering
	TimeSatTime
)

var refTimeStatusCodes = map[uint8]RefTimeStatus{
	20:  TimeUnknown,
	60:  TimeApproximate,
	80:  TimeCoarseAdjusting,
	100: TimeCoarse,
	120: TimeCoarseSteering,
	130: TimeFreeWheeling,
	140: TimeFineAdjusting,
	160: TimeFine,
	170: TimeFineBackupSteering,
	180: TimeFineSteering,
	200: TimeSatTime,
}

var refTimeStatusNames = [...]string{
	RefTimeStatusUnknown:   "INVALID",
	TimeUnknown:            "UNKNOWN",
	TimeApproximate:        "APPROXIMATE",
	TimeCoarseAdjusting:    "COARSEADJUSTING",
	TimeCoarse:             "COARSE",
	TimeCoarseSteering:     "COARSESTEERING",
	TimeFreeWheeling:       "FREEWHEELING",
	TimeFineAdjusting:      "FINEADJUSTING",
	TimeFine:               "FINE",
	TimeFineBackupSteering: "FINEBACKUPSTEERING",
	TimeFineSteering:       "FINESTEERING",
	TimeSatTime:            "SATTIME",
}

// RefTimeStatusFrom decodes a raw time status.
func RefTimeStatusFrom(code uint8) RefTimeStatus {
	return refTimeStatusCodes[code]
}

// String implements fmt.Stringer.
func (s RefTimeStatus) String() string {
	if s >= 0 && int(s) < len(refTimeStatusNames) {
		return refTimeStatusNames[s]
	}
	return fmt.Sprintf("RefTimeStatus(%d)", int(s))
}
