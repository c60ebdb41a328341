package materials

import (
	"fmt"

	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	lastMatId uint32
)

type TextureSlot uint32

const (
	TextureSlot_Diffuse TextureSlot = 0
)

type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram

	UnifLocs map[string]int32

	// DiffuseTex is bound to TextureSlot_Diffuse on Bind when set. Zero leaves the slot untouched
	DiffuseTex uint32
}

func (m *Material) Bind() {

	m.ShaderProg.Bind()

	if m.DiffuseTex != 0 {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Diffuse))
		gl.BindTexture(gl.TEXTURE_2D, m.DiffuseTex)
	}
}

func (m *Material) UnBind() {
	gl.UseProgram(0)
}

// SetUniformBlockBindingPoint makes the named uniform block read from the uniform buffer bound at bindPointIndex
func (m *Material) SetUniformBlockBindingPoint(uniformBlockName string, bindPointIndex uint32) {

	nullStr := gl.Str(uniformBlockName + "\x00")
	index := gl.GetUniformBlockIndex(m.ShaderProg.Id, nullStr)
	assert.T(
		index != gl.INVALID_INDEX,
		"SetUniformBlockBindingPoint for material=%s (matId=%d; shaderId=%d) failed because the uniform block=%s wasn't found",
		m.Name,
		m.Id,
		m.ShaderProg.Id,
		uniformBlockName,
	)
	gl.UniformBlockBinding(m.ShaderProg.Id, index, bindPointIndex)
}

func (m *Material) GetUnifLoc(uniformName string) int32 {

	loc, ok := m.UnifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(m.ShaderProg.Id, name)
	assert.T(loc != -1, "Uniform '"+uniformName+"' doesn't exist on material "+m.Name)
	m.UnifLocs[uniformName] = loc
	return loc
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

// Delete deletes the shader program. Textures are owned by whoever loaded them
func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

// NewMaterialSrc creates a material from a combined shader source (see shaders.SplitCombinedShader)
func NewMaterialSrc(matName string, shaderSrc []byte) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShaderSrc(shaderSrc)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create new material '%s'. Err: %w", matName, err)
	}

	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),
	}, nil
}
