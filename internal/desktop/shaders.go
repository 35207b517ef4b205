//go:build !android

package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Phong vertex shader: world-space position and normal for lighting.
const phongVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 vFragPos;
out vec3 vNormal;

void main() {
    vec4 world = model * vec4(aPos, 1.0);
    vFragPos = world.xyz;
    vNormal = mat3(transpose(inverse(model))) * aNormal;
    gl_Position = projection * view * world;
}
` + "\x00"

// Phong fragment shader: ambient + diffuse + specular from one point light.
const phongFragSrc = `#version 410 core

uniform vec3 lightPos;
uniform vec3 lightColor;
uniform vec3 viewPos;
uniform vec3 objectColor;

in vec3 vFragPos;
in vec3 vNormal;
out vec4 FragColor;

void main() {
    vec3 ambient = 0.25 * lightColor;

    vec3 n = normalize(vNormal);
    vec3 l = normalize(lightPos - vFragPos);
    vec3 diffuse = max(dot(n, l), 0.0) * lightColor;

    vec3 v = normalize(viewPos - vFragPos);
    vec3 r = reflect(-l, n);
    vec3 specular = 0.5 * pow(max(dot(v, r), 0.0), 32.0) * lightColor;

    FragColor = vec4((ambient + diffuse + specular) * objectColor, 1.0);
}
` + "\x00"

// Overlay vertex shader: screen-pixel lines, y down.
const overlayVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const overlayFragSrc = `#version 410 core

uniform vec3 objectColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(objectColor, 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
