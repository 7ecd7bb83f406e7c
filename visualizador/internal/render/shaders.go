package render

// Os nomes dos atributos (vertexPosition, vertexTexCoord, vertexNormal) e das matrizes
// mvp/matNormal são os que a Raylib preenche sozinha em DrawMesh.
const sceneVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 model;
uniform mat4 matNormal;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;

void main()
{
    fragPosition = vec3(model * vec4(vertexPosition, 1.0));
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const sceneFragmentShader = `
#version 330

#define MAX_LIGHTS 4

struct Material {
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct LightSource {
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[MAX_LIGHTS];

out vec4 finalColor;

// Phong: ambiente + difusa + especular de uma luz pontual
vec3 calcLight(LightSource light, vec3 normal, vec3 viewDir)
{
    vec3 lightDir = normalize(light.position - fragPosition);

    vec3 ambient = light.ambientColor * material.ambientColor * material.ambientStrength;

    float diff = max(dot(normal, lightDir), 0.0);
    vec3 diffuse = diff * light.diffuseColor * material.diffuseColor;

    vec3 reflectDir = reflect(-lightDir, normal);
    float exponent = max(material.shininess * light.focalStrength, 1.0);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), exponent);
    vec3 specular = light.specularIntensity * spec * light.specularColor * material.specularColor;

    return ambient + diffuse + specular;
}

void main()
{
    vec4 base = objectColor;
    if (bUseTexture) {
        base = texture(objectTexture, fragTexCoord * UVscale);
    }

    if (!bUseLighting) {
        finalColor = base;
        return;
    }

    vec3 normal = normalize(fragNormal);
    // Faces vistas por trás (planos) usam a normal invertida
    if (!gl_FrontFacing) {
        normal = -normal;
    }
    vec3 viewDir = normalize(viewPosition - fragPosition);

    vec3 lighting = vec3(0.0);
    for (int i = 0; i < MAX_LIGHTS; i++) {
        lighting += calcLight(lightSources[i], normal, viewDir);
    }

    finalColor = vec4(lighting * base.rgb, base.a);
}
`
