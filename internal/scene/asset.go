package scene

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed assets/snowfield.yaml
var defaultSceneYAML []byte

// YAMLScene is the on-disk scene asset layout.
type YAMLScene struct {
	Name    string       `yaml:"name"`
	Nodes   []YAMLNode   `yaml:"nodes"`
	Cameras []YAMLCamera `yaml:"cameras"`
}

// YAMLNode is one transform. Parents must be declared before their children.
type YAMLNode struct {
	Name       string        `yaml:"name"`
	Parent     string        `yaml:"parent,omitempty"`
	Position   []float32     `yaml:"position,omitempty"`
	Rotation   *YAMLRotation `yaml:"rotation,omitempty"`
	Quaternion []float32     `yaml:"quaternion,omitempty"` // w, x, y, z
	Scale      []float32     `yaml:"scale,omitempty"`
	Mesh       string        `yaml:"mesh,omitempty"`
}

// YAMLRotation is an axis-angle rotation in degrees.
type YAMLRotation struct {
	Axis    []float32 `yaml:"axis"`
	Degrees float32   `yaml:"degrees"`
}

// YAMLCamera attaches a camera to a node by name.
type YAMLCamera struct {
	Node        string  `yaml:"node"`
	FovYDegrees float32 `yaml:"fovy_degrees"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// Asset is a parsed scene ready to hand to a mode.
type Asset struct {
	Name  string
	Graph *Graph
}

// Default returns the embedded snowfield scene.
func Default() (Asset, error) {
	return Parse(defaultSceneYAML)
}

// Load reads a scene asset from disk. An empty path loads the embedded default.
func Load(path string) (Asset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fmt.Errorf("scene: failed to read %s: %w", path, err)
	}
	asset, err := Parse(data)
	if err != nil {
		return Asset{}, fmt.Errorf("scene: failed to parse %s: %w", path, err)
	}
	return asset, nil
}

// Parse decodes a YAML scene asset.
func Parse(data []byte) (Asset, error) {
	var ys YAMLScene
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Asset{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	g := NewGraph()
	for i, n := range ys.Nodes {
		t, err := n.transform(g)
		if err != nil {
			return Asset{}, fmt.Errorf("node %d (%q): %w", i, n.Name, err)
		}
		g.Add(t)
	}

	for i, c := range ys.Cameras {
		h, ok := g.Find(c.Node)
		if !ok {
			return Asset{}, fmt.Errorf("camera %d: unknown node %q", i, c.Node)
		}
		fovy := c.FovYDegrees
		if fovy <= 0 {
			fovy = 60
		}
		near, far := c.Near, c.Far
		if near <= 0 {
			near = 0.1
		}
		if far <= near {
			far = 1000
		}
		g.AddCamera(Camera{
			Transform: h,
			FovY:      mgl32.DegToRad(fovy),
			Aspect:    1,
			Near:      near,
			Far:       far,
		})
	}

	return Asset{Name: ys.Name, Graph: g}, nil
}

// transform converts the YAML node, resolving its parent against nodes already added.
func (n YAMLNode) transform(g *Graph) (Transform, error) {
	t := NewTransform(n.Name)
	t.Mesh = n.Mesh

	if n.Parent != "" {
		p, ok := g.Find(n.Parent)
		if !ok {
			return t, fmt.Errorf("unknown parent %q", n.Parent)
		}
		t.Parent = p
	}

	if n.Position != nil {
		v, err := vec3(n.Position, "position")
		if err != nil {
			return t, err
		}
		t.Position = v
	}

	if n.Scale != nil {
		v, err := vec3(n.Scale, "scale")
		if err != nil {
			return t, err
		}
		t.Scale = v
	}

	switch {
	case n.Rotation != nil && n.Quaternion != nil:
		return t, fmt.Errorf("both rotation and quaternion given")
	case n.Rotation != nil:
		axis, err := vec3(n.Rotation.Axis, "rotation axis")
		if err != nil {
			return t, err
		}
		if axis.Len() == 0 {
			return t, fmt.Errorf("rotation axis is zero")
		}
		t.Rotation = mgl32.QuatRotate(mgl32.DegToRad(n.Rotation.Degrees), axis.Normalize())
	case n.Quaternion != nil:
		if len(n.Quaternion) != 4 {
			return t, fmt.Errorf("quaternion needs 4 components, got %d", len(n.Quaternion))
		}
		q := mgl32.Quat{W: n.Quaternion[0], V: mgl32.Vec3{n.Quaternion[1], n.Quaternion[2], n.Quaternion[3]}}
		if q.Len() == 0 {
			return t, fmt.Errorf("quaternion is zero")
		}
		t.Rotation = q.Normalize()
	}

	return t, nil
}

func vec3(v []float32, what string) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", what, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
