// Package track provides data structures and parsers for authored camera
// track files. A track file defines the flight path of the cinematic camera:
// an ordered list of keyframes, each placing the camera at a position looking
// at a target point, together with timing and looping metadata.
package track

import "fmt"

// Loop mode string values accepted in track files.
const (
	LoopNone     = "none"
	LoopRepeat   = "repeat"
	LoopPingPong = "pingpong"
)

// CameraTrack is the root structure of a camera track file.
type CameraTrack struct {
	// FPS is the sample rate of the track. Keyframe times are expressed in
	// samples; FPS converts between samples and seconds.
	FPS float64 `yaml:"fps"`

	// Duration is the total authored duration in seconds.
	Duration float64 `yaml:"duration"`

	// Loop selects what happens when playback reaches the end:
	// "none", "repeat" or "pingpong".
	Loop string `yaml:"loop"`

	// Smoothness is the curve tension parameter. 0.5 produces a standard
	// Catmull-Rom curve; lower values straighten the path.
	Smoothness float64 `yaml:"smoothness"`

	// Keyframes is the ordered list of authored camera poses. Times must be
	// monotonically non-decreasing.
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Keyframe is a single authored camera pose on the track timeline.
type Keyframe struct {
	// Time is the keyframe position in samples (Time / FPS = seconds).
	Time float64 `yaml:"time"`

	// Position is the camera position as [x, y, z].
	Position [3]float64 `yaml:"position"`

	// Target is the look-at target point as [x, y, z].
	Target [3]float64 `yaml:"target"`
}

// Validate checks the structural invariants of a parsed track.
// It does not check curve constraints (minimum point counts are the curve
// collaborator's responsibility).
func (t *CameraTrack) Validate() error {
	if t.FPS <= 0 {
		return fmt.Errorf("track: fps must be positive, got %v", t.FPS)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("track: duration must be positive, got %v", t.Duration)
	}
	switch t.Loop {
	case LoopNone, LoopRepeat, LoopPingPong:
	default:
		return fmt.Errorf("track: unknown loop mode %q", t.Loop)
	}
	if len(t.Keyframes) == 0 {
		return fmt.Errorf("track: at least one keyframe is required")
	}
	for i := 1; i < len(t.Keyframes); i++ {
		if t.Keyframes[i].Time < t.Keyframes[i-1].Time {
			return fmt.Errorf("track: keyframe %d time %.3f precedes keyframe %d time %.3f",
				i, t.Keyframes[i].Time, i-1, t.Keyframes[i-1].Time)
		}
	}
	return nil
}
