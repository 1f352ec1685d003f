package components

import "github.com/yohamta/donburi"

// Material is a named bag of float shader parameters.
type Material struct {
	Name   string
	params map[string]float64
}

func NewMaterial(name string) *Material {
	return &Material{Name: name, params: map[string]float64{}}
}

func (m *Material) GetFloat(param string) float64 {
	return m.params[param]
}

func (m *Material) SetFloat(param string, v float64) {
	m.params[param] = v
}

// WindData pushes Speed into every material's wind parameter.
type WindData struct {
	Speed     float64
	Param     string
	Materials []*Material
}

var Wind = donburi.NewComponentType[WindData]()

// GrassData is a strip of blades swayed by a wind material.
type GrassData struct {
	X, Y     float64 // base line start
	Width    float64
	Blades   int
	Material *Material
	Phase    float64
}

var Grass = donburi.NewComponentType[GrassData]()
