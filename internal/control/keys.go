// Package control maps keyboard input to camera motion.
package control

import (
	"fmt"
	"strings"
	"unicode"

	"raycast-renderer/internal/camera"
)

// Key is a printable ASCII key, KeyEscape, or one of the arrow keys.
type Key rune

const (
	KeyEscape Key = 27

	// Arrow keys live above the byte range so they never collide with
	// character keys.
	KeyLeft Key = 0x10000 + iota
	KeyRight
	KeyUp
	KeyDown
)

// Step sizes per key press.
const (
	MoveSpeed   = 0.1
	RotateSpeed = 0.05
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "esc"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return string(rune(k))
}

// Apply performs the camera action bound to k. Character keys are matched
// case-insensitively; unbound keys leave the camera untouched. It reports
// whether k asks the session to end.
func Apply(cam *camera.Camera, k Key) (quit bool) {
	switch k {
	case KeyEscape:
		return true
	case KeyLeft:
		cam.Rotate(RotateSpeed, 0)
		return false
	case KeyRight:
		cam.Rotate(-RotateSpeed, 0)
		return false
	case KeyUp:
		cam.Rotate(0, RotateSpeed)
		return false
	case KeyDown:
		cam.Rotate(0, -RotateSpeed)
		return false
	}

	switch unicode.ToLower(rune(k)) {
	case 'w':
		cam.Move(0, 0, MoveSpeed)
	case 's':
		cam.Move(0, 0, -MoveSpeed)
	case 'a':
		cam.Move(-MoveSpeed, 0, 0)
	case 'd':
		cam.Move(MoveSpeed, 0, 0)
	case 'q':
		cam.Move(0, MoveSpeed, 0)
	case 'e':
		cam.Move(0, -MoveSpeed, 0)
	}
	return false
}

// ParseScript turns a key script into key presses.
//
// Every printable character is a key press. The arrows are written as
// '<' '>' '^' and 'v', escape as '!' or a literal ESC byte. Whitespace
// separates nothing and is skipped. A run can be repeated with a count
// prefix: "10w" is ten presses of w.
func ParseScript(script string) ([]Key, error) {
	var keys []Key
	count := 0

	for i, r := range script {
		switch {
		case r >= '0' && r <= '9':
			count = count*10 + int(r-'0')
			if count > maxRepeat {
				return nil, fmt.Errorf("control: repeat count at offset %d exceeds %d", i, maxRepeat)
			}
			continue
		case unicode.IsSpace(r):
			if count > 0 {
				return nil, fmt.Errorf("control: repeat count at offset %d has no key", i)
			}
			continue
		}

		k, err := scriptKey(r)
		if err != nil {
			return nil, fmt.Errorf("control: parse script at offset %d: %w", i, err)
		}

		n := count
		if n == 0 {
			n = 1
		}
		for j := 0; j < n; j++ {
			keys = append(keys, k)
		}
		count = 0
	}

	if count > 0 {
		return nil, fmt.Errorf("control: script ends with a dangling repeat count")
	}
	return keys, nil
}

const maxRepeat = 10000

func scriptKey(r rune) (Key, error) {
	switch r {
	case '<':
		return KeyLeft, nil
	case '>':
		return KeyRight, nil
	case '^':
		return KeyUp, nil
	case 'v':
		return KeyDown, nil
	case '!', rune(KeyEscape):
		return KeyEscape, nil
	}
	if r > unicode.MaxASCII || !unicode.IsPrint(r) {
		return 0, fmt.Errorf("unsupported key %q", r)
	}
	return Key(r), nil
}

// FormatScript is the inverse of ParseScript without repeat counts.
func FormatScript(keys []Key) string {
	var b strings.Builder
	for _, k := range keys {
		switch k {
		case KeyLeft:
			b.WriteByte('<')
		case KeyRight:
			b.WriteByte('>')
		case KeyUp:
			b.WriteByte('^')
		case KeyDown:
			b.WriteByte('v')
		case KeyEscape:
			b.WriteByte('!')
		default:
			b.WriteRune(rune(k))
		}
	}
	return b.String()
}
