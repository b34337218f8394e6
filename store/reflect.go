package store

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/defaults/asset"
)

// ErrNoEntryPoints is returned for WGSL source without entry points.
var ErrNoEntryPoints = errors.New("store: shader has no entry points")

// ReflectWGSL parses and lowers WGSL source and describes its entry points.
// No code is generated.
func ReflectWGSL(source string) (asset.ShaderDesc, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return asset.ShaderDesc{}, fmt.Errorf("reflect wgsl: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return asset.ShaderDesc{}, fmt.Errorf("reflect wgsl: %w", err)
	}
	if len(module.EntryPoints) == 0 {
		return asset.ShaderDesc{}, ErrNoEntryPoints
	}

	var d asset.ShaderDesc
	for _, ep := range module.EntryPoints {
		d.Stages |= stageFromIR(ep.Stage)
		d.EntryPoints = append(d.EntryPoints, ep.Name)
	}
	return d, nil
}

// stageFromIR maps a naga stage to a pipeline stage. Task and mesh stages
// have no pipeline stage bit.
func stageFromIR(s ir.ShaderStage) gputypes.ShaderStage {
	switch s {
	case ir.StageVertex:
		return gputypes.ShaderStageVertex
	case ir.StageFragment:
		return gputypes.ShaderStageFragment
	case ir.StageCompute:
		return gputypes.ShaderStageCompute
	default:
		return gputypes.ShaderStageNone
	}
}
