// SPDX-License-Identifier: MIT

package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/sensorbind/diag"
	"github.com/albertocavalcante/sensorbind/model"
)

func decl(host, method string, sensorType int, params ...model.Parameter) model.AnnotatedMethodDecl {
	return model.AnnotatedMethodDecl{
		Package: "test",
		Host:    host,
		Method:  method,
		Params:  params,
		Marker:  model.Marker{SensorType: sensorType},
		Pos:     model.Position{File: "Test.java", Line: 9, Column: 10},
	}
}

var (
	eventParam  = model.Parameter{Type: "android.hardware.SensorEvent", Name: "event"}
	objectParam = model.Parameter{Type: "java.lang.Object", Name: "wrongType"}
	intParam    = model.Parameter{Type: "int", Name: "extra"}
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		decl     model.AnnotatedMethodDecl
		wantKind diag.Kind // zero means accepted
		wantMsg  string
	}{
		{
			name:     "missing sensor type",
			decl:     decl("Test", "testMagneticFieldSensorChanged", model.SensorTypeUnset, eventParam),
			wantKind: diag.MissingSensorType,
			wantMsg:  "No sensor type specified in @OnSensorChanged for method testMagneticFieldSensorChanged. Set a sensor type such as Sensor.TYPE_ACCELEROMETER.",
		},
		{
			name:     "missing sensor type wins over arity",
			decl:     decl("Test", "m", model.SensorTypeUnset),
			wantKind: diag.MissingSensorType,
			wantMsg:  "No sensor type specified in @OnSensorChanged for method m. Set a sensor type such as Sensor.TYPE_ACCELEROMETER.",
		},
		{
			name:     "two parameters",
			decl:     decl("Test", "testMagneticFieldSensorChanged", 2, eventParam, intParam),
			wantKind: diag.InvalidParameterArity,
			wantMsg:  "@OnSensorChanged methods can only have 1 parameter(s). (Test.testMagneticFieldSensorChanged)",
		},
		{
			name:     "no parameters",
			decl:     decl("Test", "m", 2),
			wantKind: diag.InvalidParameterArity,
			wantMsg:  "@OnSensorChanged methods can only have 1 parameter(s). (Test.m)",
		},
		{
			name:     "arity wins over type",
			decl:     decl("Test", "m", 2, objectParam, objectParam),
			wantKind: diag.InvalidParameterArity,
			wantMsg:  "@OnSensorChanged methods can only have 1 parameter(s). (Test.m)",
		},
		{
			name:     "wrong parameter type",
			decl:     decl("Test", "testMagneticFieldSensorChanged", 2, objectParam),
			wantKind: diag.InvalidParameterType,
			wantMsg:  "Method parameters are not valid for @OnSensorChanged annotated method. Expected parameters of type(s): android.hardware.SensorEvent. (Test.testMagneticFieldSensorChanged)",
		},
		{
			name:     "unqualified event type is not accepted",
			decl:     decl("Test", "m", 2, model.Parameter{Type: "SensorEvent", Name: "event"}),
			wantKind: diag.InvalidParameterType,
			wantMsg:  "Method parameters are not valid for @OnSensorChanged annotated method. Expected parameters of type(s): android.hardware.SensorEvent. (Test.m)",
		},
		{
			name:     "nested host uses simple name",
			decl:     decl("Outer.Inner", "m", 2, objectParam),
			wantKind: diag.InvalidParameterType,
			wantMsg:  "Method parameters are not valid for @OnSensorChanged annotated method. Expected parameters of type(s): android.hardware.SensorEvent. (Inner.m)",
		},
		{
			name: "valid",
			decl: decl("Test", "m", 2, eventParam),
		},
		{
			name: "negative code is passed through",
			decl: decl("Test", "m", -1, eventParam),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.decl)
			switch r := res.(type) {
			case Accepted:
				if tt.wantKind != 0 {
					t.Fatalf("accepted, want %v", tt.wantKind)
				}
				if diff := cmp.Diff(tt.decl, r.Decl); diff != "" {
					t.Errorf("accepted decl mismatch (-want +got):\n%s", diff)
				}
			case Rejected:
				if tt.wantKind == 0 {
					t.Fatalf("rejected with %q, want accepted", r.Message)
				}
				if r.Kind != tt.wantKind {
					t.Errorf("kind = %v, want %v", r.Kind, tt.wantKind)
				}
				if r.Message != tt.wantMsg {
					t.Errorf("message:\n got: %s\nwant: %s", r.Message, tt.wantMsg)
				}
				if r.Pos != tt.decl.Pos {
					t.Errorf("pos = %v, want %v", r.Pos, tt.decl.Pos)
				}
			default:
				t.Fatalf("unexpected result %T", res)
			}
		})
	}
}

func TestValidate_ReportsRejections(t *testing.T) {
	rep := diag.NewReporter()

	Validate(decl("Test", "ok", 1, eventParam), rep)
	if rep.Len() != 0 {
		t.Fatalf("accepted declaration reported: %v", rep.Diagnostics())
	}

	Validate(decl("Test", "bad", 1), rep)
	ds := rep.Diagnostics()
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(ds))
	}
	if ds[0].Location != "Test.bad" {
		t.Errorf("location = %q, want %q", ds[0].Location, "Test.bad")
	}
}

func TestAll(t *testing.T) {
	rep := diag.NewReporter()
	decls := []model.AnnotatedMethodDecl{
		decl("A", "noType", model.SensorTypeUnset, eventParam),
		decl("A", "ok", 1, eventParam),
		decl("B", "wrong", 1, intParam),
	}

	results := All(decls, rep)
	if len(results) != len(decls) {
		t.Fatalf("got %d results, want %d", len(results), len(decls))
	}
	if _, ok := results[1].(Accepted); !ok {
		t.Errorf("results[1] = %T, want Accepted", results[1])
	}

	want := []string{
		"No sensor type specified in @OnSensorChanged for method noType. Set a sensor type such as Sensor.TYPE_ACCELEROMETER.",
		"Method parameters are not valid for @OnSensorChanged annotated method. Expected parameters of type(s): android.hardware.SensorEvent. (B.wrong)",
	}
	if diff := cmp.Diff(want, messages(rep)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func messages(rep *diag.Reporter) []string {
	var msgs []string
	for _, d := range rep.Diagnostics() {
		msgs = append(msgs, d.Message)
	}
	return msgs
}
