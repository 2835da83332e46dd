// Package wiring holds the wiring tables, resolves them against a board
// layout and detects controller pins claimed by more than one connection.
package wiring

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// SignalKind classifies a logic connection. It only selects the wire color.
type SignalKind string

const (
	KindPWM   SignalKind = "pwm"
	KindDir   SignalKind = "dir"
	KindEnc   SignalKind = "enc"
	KindIn1   SignalKind = "in1"
	KindIn2   SignalKind = "in2"
	KindPwr   SignalKind = "pwr"
	KindGnd   SignalKind = "gnd"
	KindOther SignalKind = "other"
)

// ParseSignalKind maps a case-insensitive name to its kind. Unknown names
// become KindOther.
func ParseSignalKind(s string) SignalKind {
	switch k := SignalKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPWM, KindDir, KindEnc, KindIn1, KindIn2, KindPwr, KindGnd:
		return k
	default:
		return KindOther
	}
}

// UnmarshalYAML normalizes the kind through ParseSignalKind. Rows without
// a kind key never reach it; Parse fills those in.
func (k *SignalKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*k = ParseSignalKind(s)
	return nil
}

// Entry connects a controller GPIO to a port of another component.
type Entry struct {
	Pin       int        `yaml:"pin"`
	Component string     `yaml:"component"`
	Port      string     `yaml:"port"`
	Kind      SignalKind `yaml:"kind"`
}

// PowerEntry connects a driver output to a motor terminal.
type PowerEntry struct {
	From     string `yaml:"from"`
	FromPort string `yaml:"from_port"`
	To       string `yaml:"to"`
	ToPort   string `yaml:"to_port"`
}

// Table is the full, ordered wiring input. Row order matters: it decides
// lane assignment and the order conflicts are reported in.
type Table struct {
	Logic []Entry      `yaml:"logic"`
	Power []PowerEntry `yaml:"power"`
}

// DefaultTable is the four-axis pinout with full quadrature encoders.
//
//	X: IN1(22) IN2(21) A(34) B(35)
//	Y: IN1(19) IN2(23) A(36) B(39)
//	Z: IN1(18) IN2(5)  A(25) B(26)
//	E: IN1(17) IN2(16) A(27) B(14)
//	Heaters: hotend(4) bed(13)
func DefaultTable() Table {
	return Table{
		Logic: []Entry{
			{22, "driver1", "IN1", KindIn1}, {21, "driver1", "IN2", KindIn2},
			{34, "motorX", "A", KindEnc}, {35, "motorX", "B", KindEnc},

			{19, "driver1", "IN3", KindIn1}, {23, "driver1", "IN4", KindIn2},
			{36, "motorY", "A", KindEnc}, {39, "motorY", "B", KindEnc},

			{18, "driver2", "IN1", KindIn1}, {5, "driver2", "IN2", KindIn2},
			{25, "motorZ", "A", KindEnc}, {26, "motorZ", "B", KindEnc},

			{17, "driver2", "IN3", KindIn1}, {16, "driver2", "IN4", KindIn2},
			{27, "motorE", "A", KindEnc}, {14, "motorE", "B", KindEnc},

			{4, "hotend", "SIG", KindPWM},
			{13, "bed", "SIG", KindPWM},
		},
		Power: []PowerEntry{
			{"driver1", "OUT1", "motorX", "M+"}, {"driver1", "OUT2", "motorX", "M-"},
			{"driver1", "OUT3", "motorY", "M+"}, {"driver1", "OUT4", "motorY", "M-"},
			{"driver2", "OUT1", "motorZ", "M+"}, {"driver2", "OUT2", "motorZ", "M-"},
			{"driver2", "OUT3", "motorE", "M+"}, {"driver2", "OUT4", "motorE", "M-"},
		},
	}
}
