package rootsig

// ShaderVisibility restricts which shader stages see a descriptor table.
// Values match the serialized encoding of the target runtime.
type ShaderVisibility uint32

const (
	VisibilityAll ShaderVisibility = iota
	VisibilityVertex
	VisibilityHull
	VisibilityDomain
	VisibilityGeometry
	VisibilityPixel
	VisibilityAmplification
	VisibilityMesh
)

func (v ShaderVisibility) String() string {
	switch v {
	case VisibilityAll:
		return "All"
	case VisibilityVertex:
		return "Vertex"
	case VisibilityHull:
		return "Hull"
	case VisibilityDomain:
		return "Domain"
	case VisibilityGeometry:
		return "Geometry"
	case VisibilityPixel:
		return "Pixel"
	case VisibilityAmplification:
		return "Amplification"
	case VisibilityMesh:
		return "Mesh"
	}
	return "Unknown"
}
