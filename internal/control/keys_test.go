package control

import (
	"math"
	"reflect"
	"testing"

	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/mathutil"
)

func TestApply_Movement(t *testing.T) {
	tests := []struct {
		key  Key
		want func(c *camera.Camera) mathutil.Vec3
	}{
		{'w', func(c *camera.Camera) mathutil.Vec3 { return c.Forward.Scale(MoveSpeed) }},
		{'S', func(c *camera.Camera) mathutil.Vec3 { return c.Forward.Scale(-MoveSpeed) }},
		{'a', func(c *camera.Camera) mathutil.Vec3 { return c.Right.Scale(-MoveSpeed) }},
		{'D', func(c *camera.Camera) mathutil.Vec3 { return c.Right.Scale(MoveSpeed) }},
		{'q', func(c *camera.Camera) mathutil.Vec3 { return c.Up.Scale(MoveSpeed) }},
		{'E', func(c *camera.Camera) mathutil.Vec3 { return c.Up.Scale(-MoveSpeed) }},
		{'x', func(c *camera.Camera) mathutil.Vec3 { return mathutil.Vec3{} }},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			c := camera.New()
			start := c.Position

			if Apply(c, tt.key) {
				t.Fatal("Movement key should not quit")
			}

			moved := c.Position.Sub(start)
			if want := tt.want(c); moved.Sub(want).Len() > 1e-12 {
				t.Errorf("Moved by %v, expected %v", moved, want)
			}
		})
	}
}

func TestApply_Rotation(t *testing.T) {
	tests := []struct {
		key       Key
		yaw, ptch float64
	}{
		{KeyLeft, RotateSpeed, 0},
		{KeyRight, -RotateSpeed, 0},
		{KeyUp, 0, RotateSpeed},
		{KeyDown, 0, -RotateSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			c := camera.New()
			yaw0, pitch0 := c.Yaw, c.Pitch

			Apply(c, tt.key)

			if math.Abs(c.Yaw-yaw0-tt.yaw) > 1e-12 || math.Abs(c.Pitch-pitch0-tt.ptch) > 1e-12 {
				t.Errorf("Rotated by (%f, %f), expected (%f, %f)", c.Yaw-yaw0, c.Pitch-pitch0, tt.yaw, tt.ptch)
			}
		})
	}
}

func TestApply_EscapeQuits(t *testing.T) {
	c := camera.New()
	start := *c
	if !Apply(c, KeyEscape) {
		t.Error("Escape should quit")
	}
	if *c != start {
		t.Error("Escape should not change the camera")
	}
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []Key
		wantErr bool
	}{
		{"Empty", "", nil, false},
		{"Letters and arrows", "wA<^>v", []Key{'w', 'A', KeyLeft, KeyUp, KeyRight, KeyDown}, false},
		{"Whitespace skipped", "w w\n.", []Key{'w', 'w', '.'}, false},
		{"Repeat count", "3d2>", []Key{'d', 'd', 'd', KeyRight, KeyRight}, false},
		{"Escape forms", "!\x1b", []Key{KeyEscape, KeyEscape}, false},
		{"Dangling count", "w12", nil, true},
		{"Count before space", "2 w", nil, true},
		{"Non-ASCII", "wé", nil, true},
		{"Control byte", "w\x01", nil, true},
		{"Huge count", "99999999w", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScript(tt.script)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatScript_RoundTrip(t *testing.T) {
	script := "ww<^.d!"
	keys, err := ParseScript(script)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatScript(keys); got != script {
		t.Errorf("Expected %q, got %q", script, got)
	}
}
