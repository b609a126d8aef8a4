// Package v1 defines the telemetry messages published by the daemon,
// following the wire layout in sat.proto.
package v1
