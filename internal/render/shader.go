package render

import rl "github.com/gen2brain/raylib-go/raylib"

// loadLitShader returns the directional light + ambient shader every brick is drawn with.
// emissive is added on top so the highlight stays visible from any side.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform vec3 emissive;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = abs(dot(N, L));
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  finalColor = vec4(amb + diffuse + lightColor * spec + emissive, tint.a);
}
`
)

var (
	defaultAmbient    = [4]float32{0.35, 0.36, 0.4, 1.0}
	defaultLightColor = [3]float32{1.0, 0.98, 0.95}
	defaultLightDir   = [3]float32{0.5, 1, 0.5}
)

const (
	defaultLightIntensity   = float32(0.75)
	defaultSpecularPower    = float32(32.0)
	defaultSpecularStrength = float32(0.25)
)

// litUniforms caches uniform locations of the lit shader.
type litUniforms struct {
	viewPos, lightDir, ambient, lightColor int32
	intensity, specPower, specStrength     int32
	emissive                               int32
}

func lookupUniforms(s rl.Shader) litUniforms {
	return litUniforms{
		viewPos:      rl.GetShaderLocation(s, "viewPos"),
		lightDir:     rl.GetShaderLocation(s, "lightDir"),
		ambient:      rl.GetShaderLocation(s, "ambient"),
		lightColor:   rl.GetShaderLocation(s, "lightColor"),
		intensity:    rl.GetShaderLocation(s, "lightIntensity"),
		specPower:    rl.GetShaderLocation(s, "specularPower"),
		specStrength: rl.GetShaderLocation(s, "specularStrength"),
		emissive:     rl.GetShaderLocation(s, "emissive"),
	}
}

// setFrame sets the per-frame lighting uniforms (cgo-safe: local arrays).
func (u litUniforms) setFrame(s rl.Shader, viewPos [3]float32) {
	view := [3]float32{viewPos[0], viewPos[1], viewPos[2]}
	dir := defaultLightDir
	amb := defaultAmbient
	lc := defaultLightColor
	setVec(s, u.viewPos, view[:], rl.ShaderUniformVec3)
	setVec(s, u.lightDir, dir[:], rl.ShaderUniformVec3)
	setVec(s, u.ambient, amb[:], rl.ShaderUniformVec4)
	setVec(s, u.lightColor, lc[:], rl.ShaderUniformVec3)
	setVec(s, u.intensity, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	setVec(s, u.specPower, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	setVec(s, u.specStrength, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
}

func (u litUniforms) setEmissive(s rl.Shader, c [3]float32) {
	v := [3]float32{c[0], c[1], c[2]}
	setVec(s, u.emissive, v[:], rl.ShaderUniformVec3)
}

func setVec(s rl.Shader, loc int32, v []float32, kind rl.ShaderUniformDataType) {
	if loc < 0 {
		return
	}
	rl.SetShaderValueV(s, loc, v, kind, 1)
}
