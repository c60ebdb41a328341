// Package res holds the shaders used by the recipes, embedded in the
// combined '//shader:<stage>' format read by shaders.SplitCombinedShader
package res

import _ "embed"

var (
	//go:embed shaders/imgui.glsl
	ImguiShader []byte

	//go:embed shaders/stb-triangle.glsl
	StbTriangleShader []byte
)
