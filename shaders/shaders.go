package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bloeys/nmage-recipes/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const shaderTypeMarker = "//shader:"

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

// ShaderSource is the source of one shader stage taken from a combined shader file
type ShaderSource struct {
	Type ShaderType
	Src  []byte
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

// SplitCombinedShader splits a combined shader source, where each stage starts with a line like '//shader:vertex',
// into its stages. A vertex and a fragment stage are required.
func SplitCombinedShader(shaderSrc []byte) ([]ShaderSource, error) {

	shaderSources := bytes.Split(shaderSrc, []byte(shaderTypeMarker))
	if len(shaderSources) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	out := make([]ShaderSource, 0, len(shaderSources)-1)
	seen := map[ShaderType]bool{}

	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		// Anything before the first marker isn't part of any stage
		if i == 0 {
			continue
		}

		shdrType := ShaderType_Unknown
		for _, stage := range shaderStages {
			if bytes.HasPrefix(src, []byte(stage.Name)) {
				shdrType = stage.Type
				src = src[len(stage.Name):]
				break
			}
		}

		if shdrType == ShaderType_Unknown {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		if seen[shdrType] {
			return nil, fmt.Errorf("combined shader has more than one %s shader", shdrType)
		}
		seen[shdrType] = true

		// GLSL requires '#version' to be the first statement, so drop the rest of the marker line
		src = bytes.TrimLeft(src, " \t\r\n")
		out = append(out, ShaderSource{Type: shdrType, Src: src})
	}

	if !seen[ShaderType_Vertex] {
		return nil, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !seen[ShaderType_Fragment] {
		return nil, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return out, nil
}

func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	sources, err := SplitCombinedShader(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, errors.New("failed to create new shader program. Err: " + err.Error())
	}

	for i := 0; i < len(sources); i++ {

		shdr, err := CompileShaderOfType(sources[i].Src, sources[i].Type)
		if err != nil {
			shdrProg.deleteAttachedShaders()
			shdrProg.Delete()
			return ShaderProgram{}, err
		}

		shdrProg.AttachShader(shdr)
	}

	if err := shdrProg.Link(); err != nil {
		shdrProg.Delete()
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return Shader{}, fmt.Errorf("failed to compile %s shader. Err: %w", shaderType, err)
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}
