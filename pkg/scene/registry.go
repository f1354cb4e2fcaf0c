package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a preset scene, optionally overriding its camera
type Builder func(cameraOverrides ...CameraConfig) (*Scene, error)

// SceneInfo represents a registered scene with its metadata
type SceneInfo struct {
	Name        string `json:"name"`        // Registry key
	Description string `json:"description"` // One-line summary
	build       Builder
}

var registry = map[string]SceneInfo{
	"gallery": {
		Name:        "gallery",
		Description: "Four glossy and translucent spheres against glowing walls",
		build:       NewGalleryScene,
	},
	"glass": {
		Name:        "glass",
		Description: "Glass spheres lit by an emissive sphere and ceiling",
		build:       NewGlassScene,
	},
	"cornell": {
		Name:        "cornell",
		Description: "Cornell box with one sphere per preset material",
		build:       NewCornellScene,
	},
	"cubes": {
		Name:        "cubes",
		Description: "Cornell box with cubes built from parallelograms",
		build:       NewCubeScene,
	},
}

// New builds the registered scene called name
func New(name string, cameraOverrides ...CameraConfig) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}

	s, err := info.build(cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return s, nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the registered scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		scenes = append(scenes, registry[name])
	}
	return scenes
}
