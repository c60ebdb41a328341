package shaders

import (
	"errors"
	"strings"

	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var deleteShader = gl.DeleteShader

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		assert.T(false, "Unknown shader type '%d' for shader id '%d'", shader.Type, shader.Id)
	}
}

// Link links the program then deletes the attached shaders, which stay alive
// as long as the program does
func (sp *ShaderProgram) Link() error {
	gl.LinkProgram(sp.Id)
	sp.deleteAttachedShaders()
	return getProgramLinkErrors(sp.Id)
}

// deleteAttachedShaders flags the attached stages for deletion. OpenGL frees
// them once the program is deleted
func (sp *ShaderProgram) deleteAttachedShaders() {

	for _, id := range [...]*uint32{&sp.VertShaderId, &sp.FragShaderId, &sp.GeomShaderId} {

		if *id == 0 {
			continue
		}

		deleteShader(*id)
		*id = 0
	}
}

func (s *ShaderProgram) Bind() {
	gl.UseProgram(s.Id)
}

func (s *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

func (s *ShaderProgram) Delete() {
	gl.DeleteProgram(s.Id)
	s.Id = 0
}

func getProgramLinkErrors(progId uint32) error {

	var linkedSuccessfully int32
	gl.GetProgramiv(progId, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetProgramInfoLog(progId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Linking of shader program with id ", progId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}
