package shaders

import (
	"github.com/bloeys/nmage-recipes/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderType int32

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
	ShaderType_Geometry
)

// shaderStages maps each stage to its OpenGL enum and the name used after '//shader:'
var shaderStages = []struct {
	Type   ShaderType
	Name   string
	GlType uint32
}{
	{ShaderType_Vertex, "vertex", gl.VERTEX_SHADER},
	{ShaderType_Fragment, "fragment", gl.FRAGMENT_SHADER},
	{ShaderType_Geometry, "geometry", gl.GEOMETRY_SHADER},
}

func (s ShaderType) ToGl() uint32 {

	for _, stage := range shaderStages {
		if stage.Type == s {
			return stage.GlType
		}
	}

	assert.T(false, "Unknown shader type '%d'", s)
	return 0
}

func (s ShaderType) String() string {

	for _, stage := range shaderStages {
		if stage.Type == s {
			return stage.Name
		}
	}

	return "unknown"
}
