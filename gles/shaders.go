package gles

const vertexShader = `#version 300 es
void main() {
	vec2 p = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2));
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}
`

// The target texture holds pixmap row 0 in GL row 0, so gl_FragCoord is
// already in pixmap space.
const circleFragmentShader = `#version 300 es
precision highp float;
uniform vec3 u_circle;
uniform vec4 u_color;
uniform float u_aa;
out vec4 fragColor;
void main() {
	float d = length(gl_FragCoord.xy - u_circle.xy) - u_circle.z;
	float coverage = u_aa > 0.5 ? clamp(0.5 - d, 0.0, 1.0) : step(d, 0.0);
	if (coverage <= 0.0) {
		discard;
	}
	fragColor = vec4(u_color.rgb, u_color.a * coverage);
}
`
