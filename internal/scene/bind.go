package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/bridgefit/internal/loop/config"
)

// Names of the transforms the game drives.
const (
	NamePlayer        = "Player"
	NameDeadPlayer    = "DeadPlayer"
	NameObstacleOuter = "ObsOut"
	NameObstacleInner = "ObsIn"
)

var (
	// ErrMissingTransform is returned when a required transform is absent.
	ErrMissingTransform = errors.New("transform not found")
	// ErrCameraCount is returned when a scene does not have exactly one camera.
	ErrCameraCount = errors.New("expecting scene to have exactly one camera")
)

// Handles are the typed references the game holds into a bound scene.
type Handles struct {
	Player        *Transform
	Dead          *Transform
	ObstacleOuter *Transform
	ObstacleInner *Transform
	Camera        *Camera
}

// Bind resolves every required transform and the camera up front, failing on
// the first violation. On success the obstacle is placed at its spawn distance
// and the dead avatar off stage.
func Bind(s *Scene) (Handles, error) {
	var h Handles
	for _, req := range []struct {
		name string
		dst  **Transform
	}{
		{NamePlayer, &h.Player},
		{NameDeadPlayer, &h.Dead},
		{NameObstacleOuter, &h.ObstacleOuter},
		{NameObstacleInner, &h.ObstacleInner},
	} {
		t, ok := s.Lookup(req.name)
		if !ok {
			return Handles{}, fmt.Errorf("%w: %s", ErrMissingTransform, req.name)
		}
		*req.dst = t
	}

	if len(s.Cameras) != 1 {
		return Handles{}, fmt.Errorf("%w, but it has %d", ErrCameraCount, len(s.Cameras))
	}
	h.Camera = &s.Cameras[0]

	h.ObstacleOuter.Position[1] = config.StartPosition
	h.Dead.Position[1] = -config.StartPosition
	return h, nil
}

// Bridge builds the default level: the player on the lane at the origin, the
// dead avatar waiting off stage, the obstacle ring and one camera.
func Bridge() *Scene {
	s := &Scene{}
	unit := mgl32.Vec3{1, 1, 1}

	s.Add(&Transform{Name: NameObstacleOuter, Scale: unit}, MeshFrame)
	s.Add(&Transform{Name: NameObstacleInner, Scale: unit}, MeshFrame)
	s.Add(&Transform{Name: NamePlayer, Scale: unit}, MeshBlock)
	s.Add(&Transform{Name: NameDeadPlayer, Scale: unit}, MeshShell)

	cam := &Transform{Name: "Camera", Position: mgl32.Vec3{0, config.CameraY, 0}, Scale: unit}
	s.Transforms = append(s.Transforms, cam)
	s.Cameras = []Camera{{Transform: cam, Aspect: 1, Span: config.CameraSpan}}
	return s
}
