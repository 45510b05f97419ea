package track

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseTrack parses camera track data in YAML format and validates it.
//
// Missing optional fields receive defaults: loop defaults to "none" and
// smoothness to 0.5 (standard Catmull-Rom tension).
func ParseTrack(data []byte) (*CameraTrack, error) {
	track := &CameraTrack{
		Loop:       LoopNone,
		Smoothness: 0.5,
	}
	if err := yaml.Unmarshal(data, track); err != nil {
		return nil, fmt.Errorf("failed to parse track data: %w", err)
	}
	if err := track.Validate(); err != nil {
		return nil, err
	}
	return track, nil
}

// ParseTrackFile reads and parses a camera track YAML file.
//
// Example:
//
//	track, err := track.ParseTrackFile("assets/tracks/overview.yaml")
//	if err != nil {
//	    log.Fatalf("Failed to load track: %v", err)
//	}
func ParseTrackFile(path string) (*CameraTrack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track file '%s': %w", path, err)
	}
	track, err := ParseTrack(data)
	if err != nil {
		return nil, fmt.Errorf("track file '%s': %w", path, err)
	}
	return track, nil
}
