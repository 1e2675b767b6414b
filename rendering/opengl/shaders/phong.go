package shaders

// MaxLights is the size of the light array in the lighting shader
const MaxLights = 2

// Attribute locations shared with the mesh upload code
const (
	PositionLocation = 0
	NormalLocation   = 1
)

const phongVertexShader = `
#version 410 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

uniform mat4 modelView;
uniform mat4 projection;
uniform mat3 normalMatrix;

out vec3 eyePos;
out vec3 eyeNormal;

void main() {
    vec4 p = modelView * vec4(position, 1.0);
    eyePos = p.xyz;
    eyeNormal = normalize(normalMatrix * normal);
    gl_Position = projection * p;
}
`

// Light positions are given in eye space, matching lights placed before any
// camera transform is installed.
const phongFragmentShader = `
#version 410 core

struct Light {
    vec4 position;
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    int enabled;
};

struct Material {
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
    float shininess;
};

uniform Light lights[2];
uniform Material material;
uniform vec4 globalAmbient;

in vec3 eyePos;
in vec3 eyeNormal;

out vec4 outColor;

void main() {
    vec3 n = normalize(eyeNormal);
    vec4 color = globalAmbient * material.ambient;

    for (int i = 0; i < 2; i++) {
        if (lights[i].enabled == 0) {
            continue;
        }
        vec3 l = lights[i].position.w == 0.0
            ? normalize(lights[i].position.xyz)
            : normalize(lights[i].position.xyz - eyePos);
        float ndotl = max(dot(n, l), 0.0);

        color += lights[i].ambient * material.ambient;
        color += ndotl * lights[i].diffuse * material.diffuse;
        if (ndotl > 0.0) {
            vec3 h = normalize(l + vec3(0.0, 0.0, 1.0));
            float spec = material.shininess > 0.0
                ? pow(max(dot(n, h), 0.0), material.shininess)
                : 1.0;
            color += spec * lights[i].specular * material.specular;
        }
    }

    outColor = vec4(clamp(color.rgb, 0.0, 1.0), material.diffuse.a);
}
`

// CompilePhongShaders builds the lit-surface program used for every object
func CompilePhongShaders() (uint32, error) {
	return buildProgram(phongVertexShader, phongFragmentShader)
}
