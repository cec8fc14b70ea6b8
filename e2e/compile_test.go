// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated binders compile against the platform
// and runtime types they reference.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// stubs are minimal stand-ins for the Android SDK and the annotation
// runtime, enough for javac to type-check generated binders.
var stubs = map[string]string{
	"android/content/Context.java": `package android.content;
public abstract class Context {
  public static final String SENSOR_SERVICE = "sensor";
  public abstract Object getSystemService(String name);
}
`,
	"android/hardware/Sensor.java": `package android.hardware;
public final class Sensor {
  public static final int TYPE_ACCELEROMETER = 1;
  public static final int TYPE_MAGNETIC_FIELD = 2;
  public static final int TYPE_LIGHT = 5;
}
`,
	"android/hardware/SensorEvent.java": `package android.hardware;
public class SensorEvent {
  public float[] values;
}
`,
	"android/hardware/SensorEventListener.java": `package android.hardware;
public interface SensorEventListener {
  void onSensorChanged(SensorEvent event);
  void onAccuracyChanged(Sensor sensor, int accuracy);
}
`,
	"android/hardware/SensorManager.java": `package android.hardware;
public abstract class SensorManager {
  public static final int SENSOR_DELAY_NORMAL = 3;
  public abstract Sensor getDefaultSensor(int type);
  public abstract boolean registerListener(SensorEventListener listener, Sensor sensor, int delay);
  public abstract void unregisterListener(SensorEventListener listener);
}
`,
	"com/dvoiss/sensorannotations/OnSensorChanged.java": `package com.dvoiss.sensorannotations;
import java.lang.annotation.*;
@Retention(RetentionPolicy.CLASS)
@Target(ElementType.METHOD)
public @interface OnSensorChanged {
  int value();
  int delay() default 3;
}
`,
	"com/dvoiss/sensorannotations/internal/SensorBinder.java": `package com.dvoiss.sensorannotations.internal;
public interface SensorBinder<T> {
  void bind(T target);
  void unbind();
}
`,
	"com/dvoiss/sensorannotations/internal/EventListenerWrapper.java": `package com.dvoiss.sensorannotations.internal;
import android.hardware.Sensor;
import android.hardware.SensorManager;
public interface EventListenerWrapper {
  int getSensorType();
  Sensor getSensor(SensorManager manager);
  void registerListener(SensorManager manager);
  void unregisterListener(SensorManager manager);
}
`,
	"com/dvoiss/sensorannotations/internal/SensorEventListenerWrapper.java": `package com.dvoiss.sensorannotations.internal;
import android.hardware.Sensor;
import android.hardware.SensorEventListener;
import android.hardware.SensorManager;
public final class SensorEventListenerWrapper implements EventListenerWrapper {
  private final int sensorType;
  private final int delay;
  private final SensorEventListener listener;
  public SensorEventListenerWrapper(int sensorType, int delay, SensorEventListener listener) {
    this.sensorType = sensorType;
    this.delay = delay;
    this.listener = listener;
  }
  public int getSensorType() { return sensorType; }
  public Sensor getSensor(SensorManager manager) { return manager.getDefaultSensor(sensorType); }
  public void registerListener(SensorManager manager) { manager.registerListener(listener, getSensor(manager), delay); }
  public void unregisterListener(SensorManager manager) { manager.unregisterListener(listener); }
}
`,
}

// hosts are annotated sources covering top-level, nested and
// default-package hosts.
var hosts = map[string]string{
	"app/Compass.java": `package app;

import android.hardware.Sensor;
import android.hardware.SensorEvent;
import android.hardware.SensorManager;
import com.dvoiss.sensorannotations.OnSensorChanged;

public class Compass {
  @OnSensorChanged(Sensor.TYPE_MAGNETIC_FIELD)
  void onMagnetic(SensorEvent event) {}

  @OnSensorChanged(value = Sensor.TYPE_ACCELEROMETER, delay = SensorManager.SENSOR_DELAY_NORMAL)
  void onAccel(SensorEvent event) {}

  public static class Inner {
    @OnSensorChanged(Sensor.TYPE_LIGHT)
    void onLight(SensorEvent event) {}
  }
}
`,
	"Root.java": `import android.hardware.SensorEvent;
import com.dvoiss.sensorannotations.OnSensorChanged;

class Root {
  @OnSensorChanged(5)
  void onLight(SensorEvent event) {}
}
`,
}

// TestJavaOutputCompiles verifies that generated binders compile with javac.
func TestJavaOutputCompiles(t *testing.T) {
	if _, err := exec.LookPath("javac"); err != nil {
		t.Skip("javac not installed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	work := t.TempDir()
	srcDir := filepath.Join(work, "src")
	genDir := filepath.Join(work, "generated")
	classDir := filepath.Join(work, "classes")

	var sources []string
	for _, set := range []map[string]string{stubs, hosts} {
		for rel, content := range set {
			path := filepath.Join(srcDir, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write %s: %v", rel, err)
			}
			sources = append(sources, path)
		}
	}

	var stderr bytes.Buffer
	gen := exec.CommandContext(ctx, binary, "generate", srcDir, "-o", genDir)
	gen.Env = cleanEnv()
	gen.Stderr = &stderr
	if err := gen.Run(); err != nil {
		t.Fatalf("sensorbind generate: %v\n%s", err, stderr.String())
	}

	var generated []string
	err := filepath.WalkDir(genDir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, ".java") {
			generated = append(generated, path)
		}
		return err
	})
	if err != nil {
		t.Fatalf("walk generated: %v", err)
	}
	if len(generated) != 3 {
		t.Fatalf("got %d generated binders, want 3: %v", len(generated), generated)
	}

	t.Run("javac", func(t *testing.T) {
		start := time.Now()
		args := append([]string{"-d", classDir, "-Xlint:none"}, sources...)
		args = append(args, generated...)
		cmd := exec.CommandContext(ctx, "javac", args...)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("javac failed: %v\n%s", err, out)
		}
		t.Logf("javac: %v", time.Since(start))

		for _, class := range []string{
			"app/Compass$$SensorBinder.class",
			"app/Compass$Inner$$SensorBinder.class",
			"Root$$SensorBinder.class",
		} {
			if _, err := os.Stat(filepath.Join(classDir, filepath.FromSlash(class))); err != nil {
				t.Errorf("missing %s", class)
			}
		}
	})
}
