// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package sensor names the Android platform types and constants the
// generated binders refer to.
package sensor

import (
	"slices"
	"strings"
)

// Platform and runtime type names used by generated code.
const (
	EventType         = "android.hardware.SensorEvent"
	SensorClass       = "android.hardware.Sensor"
	ManagerClass      = "android.hardware.SensorManager"
	ListenerInterface = "android.hardware.SensorEventListener"
	ContextClass      = "android.content.Context"
	ServiceKey        = "android.content.Context.SENSOR_SERVICE"

	RuntimePackage     = "com.dvoiss.sensorannotations"
	MarkerName         = "OnSensorChanged"
	MarkerQualified    = RuntimePackage + "." + MarkerName
	BinderInterface    = RuntimePackage + ".internal.SensorBinder"
	WrapperInterface   = RuntimePackage + ".internal.EventListenerWrapper"
	WrapperImplementer = RuntimePackage + ".internal.SensorEventListenerWrapper"
)

// Types maps Sensor.TYPE_* constant names to their codes.
var Types = map[string]int{
	"TYPE_ALL":                         -1,
	"TYPE_ACCELEROMETER":               1,
	"TYPE_MAGNETIC_FIELD":              2,
	"TYPE_ORIENTATION":                 3,
	"TYPE_GYROSCOPE":                   4,
	"TYPE_LIGHT":                       5,
	"TYPE_PRESSURE":                    6,
	"TYPE_TEMPERATURE":                 7,
	"TYPE_PROXIMITY":                   8,
	"TYPE_GRAVITY":                     9,
	"TYPE_LINEAR_ACCELERATION":         10,
	"TYPE_ROTATION_VECTOR":             11,
	"TYPE_RELATIVE_HUMIDITY":           12,
	"TYPE_AMBIENT_TEMPERATURE":         13,
	"TYPE_MAGNETIC_FIELD_UNCALIBRATED": 14,
	"TYPE_GAME_ROTATION_VECTOR":        15,
	"TYPE_GYROSCOPE_UNCALIBRATED":      16,
	"TYPE_SIGNIFICANT_MOTION":          17,
	"TYPE_STEP_DETECTOR":               18,
	"TYPE_STEP_COUNTER":                19,
	"TYPE_GEOMAGNETIC_ROTATION_VECTOR": 20,
	"TYPE_HEART_RATE":                  21,
	"TYPE_POSE_6DOF":                   28,
	"TYPE_STATIONARY_DETECT":           29,
	"TYPE_MOTION_DETECT":               30,
	"TYPE_HEART_BEAT":                  31,
	"TYPE_LOW_LATENCY_OFFBODY_DETECT":  34,
	"TYPE_ACCELEROMETER_UNCALIBRATED":  35,
	"TYPE_HINGE_ANGLE":                 36,
	"TYPE_HEAD_TRACKER":                37,
	"TYPE_ACCELEROMETER_LIMITED_AXES":  38,
	"TYPE_GYROSCOPE_LIMITED_AXES":      39,
	"TYPE_HEADING":                     42,
	"TYPE_DEVICE_PRIVATE_BASE":         0x10000,

	"TYPE_ACCELEROMETER_LIMITED_AXES_UNCALIBRATED": 40,
	"TYPE_GYROSCOPE_LIMITED_AXES_UNCALIBRATED":     41,
}

// Delays maps SensorManager.SENSOR_DELAY_* constant names to their values.
var Delays = map[string]int{
	"SENSOR_DELAY_FASTEST": 0,
	"SENSOR_DELAY_GAME":    1,
	"SENSOR_DELAY_UI":      2,
	"SENSOR_DELAY_NORMAL":  3,
}

// Lookup resolves a fully qualified constant reference such as
// "android.hardware.Sensor.TYPE_LIGHT" or
// "android.hardware.SensorManager.SENSOR_DELAY_UI". Names that only look
// like platform constants, such as "Sensor.TYPE_LIGHT", are not resolved.
func Lookup(ref string) (int, bool) {
	i := strings.LastIndexByte(ref, '.')
	if i < 0 {
		return 0, false
	}
	owner, name := ref[:i], ref[i+1:]
	switch owner {
	case SensorClass:
		v, ok := Types[name]
		return v, ok
	case ManagerClass:
		v, ok := Delays[name]
		return v, ok
	}
	return 0, false
}

// TypeName returns the Sensor.TYPE_* name for code, or "" if unknown.
// When several names share a code the lexically first wins.
func TypeName(code int) string {
	var names []string
	for name, v := range Types {
		if v == code {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	slices.Sort(names)
	return names[0]
}
