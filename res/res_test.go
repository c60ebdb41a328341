package res

import (
	"testing"

	"github.com/bloeys/nmage-recipes/shaders"
)

func TestEmbeddedShadersSplit(t *testing.T) {

	tests := []struct {
		name string
		src  []byte
	}{
		{name: "imgui", src: ImguiShader},
		{name: "stb triangle", src: StbTriangleShader},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			got, err := shaders.SplitCombinedShader(tc.src)
			if err != nil {
				t.Fatalf("SplitCombinedShader() error = %v", err)
			}

			if len(got) != 2 || got[0].Type != shaders.ShaderType_Vertex || got[1].Type != shaders.ShaderType_Fragment {
				t.Errorf("got %d stages, want vertex then fragment", len(got))
			}
		})
	}
}
