// SPDX-License-Identifier: MIT

package javasrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/sensorbind/model"
)

func parse(t *testing.T, src string) *model.CompilationUnit {
	t.Helper()
	u, err := Parse("Test.java", []byte(src))
	require.NoError(t, err)
	return u
}

func findMethod(t *testing.T, u *model.CompilationUnit, typeName, method string) *model.MethodDecl {
	t.Helper()
	for _, td := range u.Types {
		if td.Name != typeName {
			continue
		}
		for _, m := range td.Methods {
			if m.Name == method {
				return m
			}
		}
	}
	require.Failf(t, "method not found", "%s.%s", typeName, method)
	return nil
}

func TestParse_Basic(t *testing.T) {
	u := parse(t, `package test;

import android.app.Activity;
import android.hardware.Sensor;
import android.hardware.SensorEvent;
import com.dvoiss.sensorannotations.OnSensorChanged;

public class Test extends Activity {
    @OnSensorChanged(Sensor.TYPE_MAGNETIC_FIELD)
    void onMagnetic(SensorEvent event) {}

    void plain(int x) {}
}
`)

	assert.Equal(t, "Test.java", u.Path)
	assert.Equal(t, "test", u.Package)
	require.Len(t, u.Types, 1)
	assert.Equal(t, "Test", u.Types[0].Name)
	require.Len(t, u.Types[0].Methods, 2)

	m := u.Types[0].Methods[0]
	assert.Equal(t, "onMagnetic", m.Name)
	assert.Equal(t, []model.Parameter{{Type: "android.hardware.SensorEvent", Name: "event"}}, m.Params)
	assert.Equal(t, []model.Annotation{{
		Name: "com.dvoiss.sensorannotations.OnSensorChanged",
		Args: []model.AnnotationArg{{Name: "value", Value: 2}},
	}}, m.Annotations)
	assert.Equal(t, model.Position{File: "Test.java", Line: 10, Column: 10}, m.Pos)

	plain := u.Types[0].Methods[1]
	assert.Empty(t, plain.Annotations)
	assert.Equal(t, []model.Parameter{{Type: "int", Name: "x"}}, plain.Params)
}

func TestParse_MarkerArguments(t *testing.T) {
	u := parse(t, `package p;

import static android.hardware.Sensor.TYPE_LIGHT;
import android.hardware.SensorManager;

class H {
    @OnSensorChanged(value = TYPE_LIGHT, delay = SensorManager.SENSOR_DELAY_GAME)
    void named(android.hardware.SensorEvent e) {}

    @OnSensorChanged(0x13)
    void hex(android.hardware.SensorEvent e) {}

    @OnSensorChanged((-1))
    void negative(android.hardware.SensorEvent e) {}

    @OnSensorChanged
    void bare(android.hardware.SensorEvent e) {}

    @OnSensorChanged(android.hardware.Sensor.TYPE_GRAVITY)
    void qualified(android.hardware.SensorEvent e) {}
}
`)

	tests := []struct {
		method string
		want   []model.AnnotationArg
	}{
		{"named", []model.AnnotationArg{{Name: "value", Value: 5}, {Name: "delay", Value: 1}}},
		{"hex", []model.AnnotationArg{{Name: "value", Value: 19}}},
		{"negative", []model.AnnotationArg{{Name: "value", Value: -1}}},
		{"bare", nil},
		{"qualified", []model.AnnotationArg{{Name: "value", Value: 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m := findMethod(t, u, "H", tt.method)
			require.Len(t, m.Annotations, 1)
			assert.Equal(t, "OnSensorChanged", m.Annotations[0].Name)
			assert.Equal(t, tt.want, m.Annotations[0].Args)
		})
	}
}

func TestParse_UnknownConstant(t *testing.T) {
	t.Run("on the marker", func(t *testing.T) {
		_, err := Parse("Bad.java", []byte(`class Bad {
    @OnSensorChanged(Sensor.TYPE_NOPE)
    void m(android.hardware.SensorEvent e) {}
}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Bad.java:2:22")
		assert.Contains(t, err.Error(), "unknown constant Sensor.TYPE_NOPE")
	})

	t.Run("on another annotation", func(t *testing.T) {
		u := parse(t, `class Ok {
    @SuppressWarnings("unused")
    @Retry(count = Limits.MAX)
    void m(int x) {}
}
`)
		m := findMethod(t, u, "Ok", "m")
		require.Len(t, m.Annotations, 2)
		assert.Equal(t, "SuppressWarnings", m.Annotations[0].Name)
		assert.Empty(t, m.Annotations[0].Args)
		assert.Empty(t, m.Annotations[1].Args)
	})
}

func TestParse_ConstantScope(t *testing.T) {
	u := parse(t, `package a;

import static android.hardware.Sensor.TYPE_GRAVITY;
import android.hardware.Sensor;

class K {
    static final int TYPE_LIGHT = 99;
    static final int ACC = 1;
    static final int MAG = Sensor.TYPE_MAGNETIC_FIELD, GAME = Codes.GAME;
    static final int TYPE_GRAVITY = 7;
    final int instance = 4;

    @OnSensorChanged(TYPE_LIGHT)
    void shadowed(android.hardware.SensorEvent e) {}

    @OnSensorChanged(value = ACC, delay = Codes.GAME)
    void local(android.hardware.SensorEvent e) {}

    @OnSensorChanged(K.MAG)
    void qualified(android.hardware.SensorEvent e) {}

    @OnSensorChanged(TYPE_GRAVITY)
    void overImport(android.hardware.SensorEvent e) {}

    @OnSensorChanged(a.K.GAME)
    void chained(android.hardware.SensorEvent e) {}

    static class Inner {
        static final int ACC = 35;

        @OnSensorChanged(ACC)
        void inner(android.hardware.SensorEvent e) {}

        @OnSensorChanged(MAG)
        void outer(android.hardware.SensorEvent e) {}
    }

    interface Codes {
        int GAME = 1;
    }
}
`)

	tests := []struct {
		typeName, method string
		want             []model.AnnotationArg
	}{
		{"K", "shadowed", []model.AnnotationArg{{Name: "value", Value: 99}}},
		{"K", "local", []model.AnnotationArg{{Name: "value", Value: 1}, {Name: "delay", Value: 1}}},
		{"K", "qualified", []model.AnnotationArg{{Name: "value", Value: 2}}},
		{"K", "overImport", []model.AnnotationArg{{Name: "value", Value: 7}}},
		{"K", "chained", []model.AnnotationArg{{Name: "value", Value: 1}}},
		{"K.Inner", "inner", []model.AnnotationArg{{Name: "value", Value: 35}}},
		{"K.Inner", "outer", []model.AnnotationArg{{Name: "value", Value: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m := findMethod(t, u, tt.typeName, tt.method)
			require.Len(t, m.Annotations, 1)
			assert.Equal(t, tt.want, m.Annotations[0].Args)
		})
	}
}

func TestParse_PlatformConstantImports(t *testing.T) {
	u := parse(t, `import static android.hardware.Sensor.*;
import static android.hardware.SensorManager.SENSOR_DELAY_UI;
import android.hardware.*;

class H {
    @OnSensorChanged(value = TYPE_PRESSURE, delay = SENSOR_DELAY_UI)
    void wildcard(SensorEvent e) {}

    @OnSensorChanged(value = Sensor.TYPE_ALL, delay = SensorManager.SENSOR_DELAY_GAME)
    void onDemandType(SensorEvent e) {}
}
`)
	assert.Equal(t, []model.AnnotationArg{{Name: "value", Value: 6}, {Name: "delay", Value: 2}},
		findMethod(t, u, "H", "wildcard").Annotations[0].Args)
	assert.Equal(t, []model.AnnotationArg{{Name: "value", Value: -1}, {Name: "delay", Value: 1}},
		findMethod(t, u, "H", "onDemandType").Annotations[0].Args)
}

func TestParse_UnresolvedPlatformConstant(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "bare name without static import",
			src: `import android.hardware.Sensor;
class T {
    @OnSensorChanged(TYPE_LIGHT)
    void m(android.hardware.SensorEvent e) {}
}
`,
			want: "unknown constant TYPE_LIGHT",
		},
		{
			name: "Sensor from another package",
			src: `import com.example.Sensor;
class T {
    @OnSensorChanged(Sensor.TYPE_LIGHT)
    void m(android.hardware.SensorEvent e) {}
}
`,
			want: "unknown constant Sensor.TYPE_LIGHT",
		},
		{
			name: "static import of a foreign constant",
			src: `import static com.example.Codes.TYPE_LIGHT;
class T {
    @OnSensorChanged(TYPE_LIGHT)
    void m(android.hardware.SensorEvent e) {}
}
`,
			want: "unknown constant com.example.Codes.TYPE_LIGHT",
		},
		{
			name: "non-constant field",
			src: `class T {
    static int ACC = 1;
    @OnSensorChanged(ACC)
    void m(android.hardware.SensorEvent e) {}
}
`,
			want: "unknown constant ACC",
		},
		{
			name: "circular constants",
			src: `class T {
    static final int A = B;
    static final int B = A;
    @OnSensorChanged(A)
    void m(android.hardware.SensorEvent e) {}
}
`,
			want: "circular constant",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("T.java", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_IntLiterals(t *testing.T) {
	u := parse(t, `class L {
    @OnSensorChanged(0xFFFFFFFF) void allBits(android.hardware.SensorEvent e) {}
    @OnSensorChanged(0x7fff_ffff) void maxHex(android.hardware.SensorEvent e) {}
    @OnSensorChanged(0b101) void binary(android.hardware.SensorEvent e) {}
    @OnSensorChanged(017) void octal(android.hardware.SensorEvent e) {}
    @OnSensorChanged(-2147483648) void minInt(android.hardware.SensorEvent e) {}
    @OnSensorChanged(~0) void complement(android.hardware.SensorEvent e) {}
    @OnSensorChanged(1_000) void underscores(android.hardware.SensorEvent e) {}
}
`)
	tests := []struct {
		method string
		want   int
	}{
		{"allBits", -1},
		{"maxHex", 2147483647},
		{"binary", 5},
		{"octal", 15},
		{"minInt", -2147483648},
		{"complement", -1},
		{"underscores", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m := findMethod(t, u, "L", tt.method)
			assert.Equal(t, []model.AnnotationArg{{Name: "value", Value: tt.want}}, m.Annotations[0].Args)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		for _, lit := range []string{"0x1_0000_0000", "2147483648"} {
			_, err := Parse("R.java", []byte("class R {
    @OnSensorChanged("+lit+") void m(android.hardware.SensorEvent e) {}
}
"))
			require.Error(t, err, lit)
			assert.Contains(t, err.Error(), "invalid integer literal")
		}
	})
}

func TestParse_NestedTypes(t *testing.T) {
	u := parse(t, `class Outer {
    void a(Inner i) {}

    static class Inner {
        void b(Deep d) {}

        interface Deep {
            void c(android.hardware.SensorEvent e);
        }
    }

    enum Mode {
        ON, OFF;

        void d(Mode m) {}
    }
}
`)

	var names []string
	for _, td := range u.Types {
		names = append(names, td.Name)
	}
	assert.Equal(t, []string{"Outer", "Outer.Inner", "Outer.Inner.Deep", "Outer.Mode"}, names)
	assert.Equal(t, "", u.Package)

	assert.Equal(t, "Outer.Inner", findMethod(t, u, "Outer", "a").Params[0].Type)
	assert.Equal(t, "Outer.Inner.Deep", findMethod(t, u, "Outer.Inner", "b").Params[0].Type)
	assert.Equal(t, "android.hardware.SensorEvent", findMethod(t, u, "Outer.Inner.Deep", "c").Params[0].Type)
	assert.Equal(t, "Outer.Mode", findMethod(t, u, "Outer.Mode", "d").Params[0].Type)
}

func TestParse_ParameterTypes(t *testing.T) {
	u := parse(t, `package app;

import android.hardware.*;
import java.util.List;

class T {
    void m(SensorEvent a, String b, List<String> c, int[] d, Widget e, final SensorEvent f, Sensor... g) {}
}
`)

	m := findMethod(t, u, "T", "m")
	want := []model.Parameter{
		{Type: "android.hardware.SensorEvent", Name: "a"},
		{Type: "java.lang.String", Name: "b"},
		{Type: "java.util.List", Name: "c"},
		{Type: "int[]", Name: "d"},
		{Type: "app.Widget", Name: "e"},
		{Type: "android.hardware.SensorEvent", Name: "f"},
		{Type: "android.hardware.Sensor...", Name: "g"},
	}
	assert.Equal(t, want, m.Params)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse("Broken.java", []byte("class Broken {\n    void m( {\n}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken.java")
	assert.Contains(t, err.Error(), "syntax error")
}

func TestReader_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	require.NoError(t, os.WriteFile(path, []byte("package a;\nclass A { void m() {} }\n"), 0o644))

	r, err := NewReader()
	require.NoError(t, err)
	defer r.Close()

	u, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, u.Path)
	assert.Equal(t, "a", u.Package)

	// The reader is reusable across files.
	u2, err := r.Parse("B.java", []byte("class B {}"))
	require.NoError(t, err)
	assert.Equal(t, "B", u2.Types[0].Name)

	_, err = r.ReadFile(filepath.Join(dir, "missing.java"))
	assert.Error(t, err)
}
