package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"log"
	"unsafe"

	"DeskScene/shared/scene"
	"DeskScene/shared/util"
	"DeskScene/visualizador/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

type meshEntry struct {
	mesh      rl.Mesh
	triangles int
}

// MeshLibrary guarda uma malha na GPU por forma. Todas são desenhadas com o mesmo
// material, cujo shader é o da cena; a textura difusa é trocada antes de cada desenho.
type MeshLibrary struct {
	meshes         map[scene.Shape]*meshEntry
	material       rl.Material
	defaultShader  rl.Shader
	defaultTexture rl.Texture2D
}

// NewMeshLibrary cria a biblioteca usando o programa informado. Exige janela aberta.
func NewMeshLibrary(program *ShaderProgram) *MeshLibrary {
	mat := rl.LoadMaterialDefault()
	lib := &MeshLibrary{
		meshes:         make(map[scene.Shape]*meshEntry),
		material:       mat,
		defaultShader:  mat.Shader,
		defaultTexture: mat.GetMap(rl.MapDiffuse).Texture,
	}
	lib.material.Shader = program.Shader
	return lib
}

// Load gera a geometria da forma e a envia para a GPU, uma única vez por forma.
func (l *MeshLibrary) Load(shape scene.Shape) error {
	if _, ok := l.meshes[shape]; ok {
		return nil
	}

	geom, err := meshing.Generate(shape)
	if err != nil {
		return err
	}

	mesh := l.geometryToMesh(geom)
	rl.UploadMesh(&mesh, false)
	l.freeMeshRAM(&mesh)
	if mesh.VaoID == 0 {
		return fmt.Errorf("falha ao enviar a malha %s para a GPU", shape)
	}

	l.meshes[shape] = &meshEntry{mesh: mesh, triangles: geom.TriangleCount()}
	log.Printf("[Render] Malha '%s' carregada: %d triângulos", shape, geom.TriangleCount())
	return nil
}

// Draw desenha a malha da forma com a matriz de modelo informada.
func (l *MeshLibrary) Draw(shape scene.Shape, model mgl32.Mat4) {
	e, ok := l.meshes[shape]
	if !ok {
		return
	}
	rl.DrawMesh(e.mesh, l.material, util.MatrixToRL(model))
}

// UseTexture faz os próximos desenhos amostrarem a textura informada.
// Texturas sem handle da Raylib não são desenháveis e caem para a textura branca.
func (l *MeshLibrary) UseTexture(tex textures.Texture) {
	raw, ok := rlTexture(tex)
	if !ok {
		raw = l.defaultTexture
	}
	rl.SetMaterialTexture(&l.material, rl.MapDiffuse, raw)
}

// UseColor volta para a textura branca padrão.
func (l *MeshLibrary) UseColor() {
	rl.SetMaterialTexture(&l.material, rl.MapDiffuse, l.defaultTexture)
}

// Len retorna quantas malhas estão na GPU.
func (l *MeshLibrary) Len() int {
	return len(l.meshes)
}

// Triangles retorna a soma de triângulos das malhas carregadas.
func (l *MeshLibrary) Triangles() int {
	total := 0
	for _, e := range l.meshes {
		total += e.triangles
	}
	return total
}

// Unload libera as malhas e o material. O shader pertence ao ShaderProgram.
func (l *MeshLibrary) Unload() {
	for shape, e := range l.meshes {
		rl.UnloadMesh(&e.mesh)
		delete(l.meshes, shape)
	}
	l.UseColor()
	l.material.Shader = l.defaultShader
	rl.UnloadMaterial(l.material)
}

func (l *MeshLibrary) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(data.VertexCount())
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(l.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(l.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(l.copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	return mesh
}

func (l *MeshLibrary) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a cópia em C depois do upload; a GPU já tem os dados.
func (l *MeshLibrary) freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
}
