package assimp

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// PostProcess is the aiPostProcessSteps bitmask handed to the importer. The
// binding never interprets it; unknown bits are forwarded as they are.
type PostProcess uint32

const (
	CalcTangentSpace         PostProcess = 0x1
	JoinIdenticalVertices    PostProcess = 0x2
	MakeLeftHanded           PostProcess = 0x4
	Triangulate              PostProcess = 0x8
	RemoveComponent          PostProcess = 0x10
	GenNormals               PostProcess = 0x20
	GenSmoothNormals         PostProcess = 0x40
	SplitLargeMeshes         PostProcess = 0x80
	PreTransformVertices     PostProcess = 0x100
	LimitBoneWeights         PostProcess = 0x200
	ValidateDataStructure    PostProcess = 0x400
	ImproveCacheLocality     PostProcess = 0x800
	RemoveRedundantMaterials PostProcess = 0x1000
	FixInfacingNormals       PostProcess = 0x2000
	PopulateArmatureData     PostProcess = 0x4000
	SortByPType              PostProcess = 0x8000
	FindDegenerates          PostProcess = 0x10000
	FindInvalidData          PostProcess = 0x20000
	GenUVCoords              PostProcess = 0x40000
	TransformUVCoords        PostProcess = 0x80000
	FindInstances            PostProcess = 0x100000
	OptimizeMeshes           PostProcess = 0x200000
	OptimizeGraph            PostProcess = 0x400000
	FlipUVs                  PostProcess = 0x800000
	FlipWindingOrder         PostProcess = 0x1000000
	SplitByBoneCount         PostProcess = 0x2000000
	Debone                   PostProcess = 0x4000000
	GlobalScale              PostProcess = 0x8000000
	EmbedTextures            PostProcess = 0x10000000
	ForceGenNormals          PostProcess = 0x20000000
	DropNormals              PostProcess = 0x40000000
	GenBoundingBoxes         PostProcess = 0x80000000
)

// Presets mirroring aiProcessPreset_* and aiProcess_ConvertToLeftHanded.
const (
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	TargetRealtimeFast = CalcTangentSpace | GenNormals | JoinIdenticalVertices |
		Triangulate | GenUVCoords | SortByPType

	TargetRealtimeQuality = CalcTangentSpace | GenSmoothNormals | JoinIdenticalVertices |
		ImproveCacheLocality | LimitBoneWeights | RemoveRedundantMaterials |
		SplitLargeMeshes | Triangulate | GenUVCoords | SortByPType |
		FindDegenerates | FindInvalidData

	TargetRealtimeMaxQuality = TargetRealtimeQuality | FindInstances |
		ValidateDataStructure | OptimizeMeshes
)

var stepNames = [32]string{
	"CalcTangentSpace",
	"JoinIdenticalVertices",
	"MakeLeftHanded",
	"Triangulate",
	"RemoveComponent",
	"GenNormals",
	"GenSmoothNormals",
	"SplitLargeMeshes",
	"PreTransformVertices",
	"LimitBoneWeights",
	"ValidateDataStructure",
	"ImproveCacheLocality",
	"RemoveRedundantMaterials",
	"FixInfacingNormals",
	"PopulateArmatureData",
	"SortByPType",
	"FindDegenerates",
	"FindInvalidData",
	"GenUVCoords",
	"TransformUVCoords",
	"FindInstances",
	"OptimizeMeshes",
	"OptimizeGraph",
	"FlipUVs",
	"FlipWindingOrder",
	"SplitByBoneCount",
	"Debone",
	"GlobalScale",
	"EmbedTextures",
	"ForceGenNormals",
	"DropNormals",
	"GenBoundingBoxes",
}

var presetNames = map[string]PostProcess{
	"converttolefthanded":      ConvertToLeftHanded,
	"targetrealtimefast":       TargetRealtimeFast,
	"targetrealtimequality":    TargetRealtimeQuality,
	"targetrealtimemaxquality": TargetRealtimeMaxQuality,
}

// Steps returns the individual bits set in p, lowest first.
func (p PostProcess) Steps() []PostProcess {
	steps := make([]PostProcess, 0, bits.OnesCount32(uint32(p)))
	for rest := uint32(p); rest != 0; rest &= rest - 1 {
		steps = append(steps, PostProcess(1)<<bits.TrailingZeros32(rest))
	}
	return steps
}

// Has reports whether every bit of step is set in p.
func (p PostProcess) Has(step PostProcess) bool {
	return p&step == step
}

// String renders p as step names joined by "|". Every bit has a name, so the
// output always parses back to the same value.
func (p PostProcess) String() string {
	if p == 0 {
		return "0"
	}
	names := make([]string, 0, bits.OnesCount32(uint32(p)))
	for _, step := range p.Steps() {
		names = append(names, stepNames[bits.TrailingZeros32(uint32(step))])
	}
	return strings.Join(names, "|")
}

// StepNames lists every known step name in bit order.
func StepNames() []string {
	return append([]string(nil), stepNames[:]...)
}

// PresetNames lists the accepted preset names.
func PresetNames() []string {
	return []string{"ConvertToLeftHanded", "TargetRealtimeFast", "TargetRealtimeQuality", "TargetRealtimeMaxQuality"}
}

// ParsePostProcess parses step or preset names separated by "|", "," or
// whitespace. Names are case-insensitive and may carry an "aiProcess_" or
// "aiProcessPreset_" prefix. Numeric tokens (decimal or 0x hex) are OR'd in
// unchanged.
func ParsePostProcess(s string) (PostProcess, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var out PostProcess
	for _, field := range fields {
		step, err := parseStep(field)
		if err != nil {
			return 0, err
		}
		out |= step
	}
	return out, nil
}

func parseStep(token string) (PostProcess, error) {
	if v, err := strconv.ParseUint(token, 0, 32); err == nil {
		return PostProcess(v), nil
	}

	name := strings.ToLower(token)
	name = strings.TrimPrefix(name, "aiprocesspreset_")
	name = strings.TrimPrefix(name, "aiprocess_")
	name = strings.ReplaceAll(name, "_", "")

	if preset, ok := presetNames[name]; ok {
		return preset, nil
	}
	for i, known := range stepNames {
		if strings.ToLower(known) == name {
			return PostProcess(1) << i, nil
		}
	}
	return 0, newValidationError(fmt.Sprintf("unknown post-process step %q", token), nil)
}
