package lightmgr

import (
	"fmt"
	"os"
	"strings"

	"github.com/gekko3d/lightmgr/core"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// SceneDef describes a scene graph and the cameras that view it.
type SceneDef struct {
	Cameras []CameraDef `yaml:"cameras"`
	Nodes   []NodeDef   `yaml:"nodes"`
}

// NodeDef defines one node and its subtree. Type is one of group, registry,
// light or drawable.
type NodeDef struct {
	Name     string      `yaml:"name"`
	Type     string      `yaml:"type"`
	Position [3]float32  `yaml:"position"`
	Rotation [3]float32  `yaml:"rotation"` // Euler XYZ, degrees
	Scale    *[3]float32 `yaml:"scale"`
	Registry *Options    `yaml:"registry"`
	Light    *LightDef   `yaml:"light"`
	Bound    *BoundDef   `yaml:"bound"`
	Children []NodeDef   `yaml:"children"`
}

// LightDef defines a point light. Color is a CSS color name; RGB overrides it.
type LightDef struct {
	Radius      float32     `yaml:"radius"`
	Color       string      `yaml:"color"`
	RGB         *[3]float32 `yaml:"rgb"`
	Intensity   float32     `yaml:"intensity"`
	Attenuation *[3]float32 `yaml:"attenuation"` // constant, linear, quadratic
}

type BoundDef struct {
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
}

type CameraDef struct {
	Name   string     `yaml:"name"`
	Eye    [3]float32 `yaml:"eye"`
	Center [3]float32 `yaml:"center"`
	Up     [3]float32 `yaml:"up"`
	Fovy   float32    `yaml:"fovy"`
	Aspect float32    `yaml:"aspect"`
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
}

// Scene is a built SceneDef.
type Scene struct {
	Graph   *Graph
	Cameras []*core.Camera
}

// LoadScene reads and builds a YAML scene file. Registries without their own
// options use opts.
func LoadScene(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	s, err := ParseScene(data, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid scene in %s: %w", path, err)
	}
	return s, nil
}

func ParseScene(data []byte, opts Options) (*Scene, error) {
	var def SceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}
	return BuildScene(def, opts)
}

func BuildScene(def SceneDef, opts Options) (*Scene, error) {
	g := NewGraph()
	for _, n := range def.Nodes {
		if err := buildNode(g, g.Root(), n, opts); err != nil {
			return nil, err
		}
	}

	s := &Scene{Graph: g}
	for i, c := range def.Cameras {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("camera%d", i)
		}
		up := mgl32.Vec3(c.Up)
		if up == (mgl32.Vec3{}) {
			up = mgl32.Vec3{0, 1, 0}
		}
		cam := core.NewCamera(name).LookAt(mgl32.Vec3(c.Eye), mgl32.Vec3(c.Center), up)
		if c.Fovy > 0 {
			aspect := c.Aspect
			if aspect <= 0 {
				aspect = 1
			}
			cam.SetPerspective(c.Fovy, aspect, c.Near, c.Far)
		}
		s.Cameras = append(s.Cameras, cam)
	}
	return s, nil
}

func (d NodeDef) transform() core.Transform {
	t := core.NewTransform()
	t.Position = mgl32.Vec3(d.Position)
	if d.Rotation != ([3]float32{}) {
		t.Rotation = mgl32.AnglesToQuat(
			mgl32.DegToRad(d.Rotation[0]),
			mgl32.DegToRad(d.Rotation[1]),
			mgl32.DegToRad(d.Rotation[2]),
			mgl32.XYZ,
		)
	}
	if d.Scale != nil {
		t.Scale = mgl32.Vec3(*d.Scale)
	}
	return t
}

func buildNode(g *Graph, parent NodeID, d NodeDef, opts Options) error {
	var id NodeID
	kind := strings.ToLower(d.Type)
	switch kind {
	case "", "group":
		id = g.AddGroup(parent, d.Name, d.transform())
	case "registry":
		o := opts
		if d.Registry != nil {
			if err := d.Registry.validate(); err != nil {
				return fmt.Errorf("registry %q: %w", d.Name, err)
			}
			o = *d.Registry
		}
		id, _ = g.AddRegistry(parent, d.Name, o)
		g.SetLocal(id, d.transform())
	case "light":
		def := LightDef{}
		if d.Light != nil {
			def = *d.Light
		}
		params, err := def.params()
		if err != nil {
			return fmt.Errorf("light %q: %w", d.Name, err)
		}
		id, _ = g.AddLight(parent, d.Name, def.Radius, params)
		g.SetLocal(id, d.transform())
	case "drawable":
		if d.Bound == nil {
			return fmt.Errorf("drawable %q: missing bound", d.Name)
		}
		id = g.AddDrawable(parent, d.Name, core.Sphere{
			Center: mgl32.Vec3(d.Bound.Center),
			Radius: d.Bound.Radius,
		})
		g.SetLocal(id, d.transform())
	default:
		return fmt.Errorf("node %q: unknown type %q", d.Name, d.Type)
	}

	if g.Kind(id).leaf() && len(d.Children) > 0 {
		return fmt.Errorf("%s %q cannot have children", g.Kind(id), d.Name)
	}
	for _, c := range d.Children {
		if err := buildNode(g, id, c, opts); err != nil {
			return err
		}
	}
	return nil
}

func (d LightDef) params() (LightParams, error) {
	p := DefaultLightParams()

	if d.Color != "" {
		c, ok := colornames.Map[strings.ToLower(d.Color)]
		if !ok {
			return p, fmt.Errorf("unknown color %q", d.Color)
		}
		p.Diffuse = mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
	}
	if d.RGB != nil {
		p.Diffuse = mgl32.Vec3(*d.RGB).Vec4(1)
	}
	if d.Intensity > 0 {
		p.Diffuse = mgl32.Vec4{p.Diffuse[0] * d.Intensity, p.Diffuse[1] * d.Intensity, p.Diffuse[2] * d.Intensity, p.Diffuse[3]}
	}
	p.Specular = p.Diffuse

	if d.Attenuation != nil {
		p.ConstantAttenuation = d.Attenuation[0]
		p.LinearAttenuation = d.Attenuation[1]
		p.QuadraticAttenuation = d.Attenuation[2]
	}
	return p, nil
}
