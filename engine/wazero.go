package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wordvm"
	"github.com/wippyai/wordvm/binding"
	"github.com/wippyai/wordvm/errors"
	"github.com/wippyai/wordvm/machine"
)

// WazeroEngine runs guests on a wazero runtime
type WazeroEngine struct {
	runtime wazero.Runtime
	mu      sync.Mutex
}

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per guest in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

// NewWazeroEngine creates a new wazero-based engine. cfg may be nil.
func NewWazeroEngine(ctx context.Context, cfg *Config) (*WazeroEngine, error) {
	runtimeCfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	Logger().Debug("engine created", zap.Uint32("memory_limit_pages", memoryLimit(cfg)))
	return &WazeroEngine{runtime: runtime}, nil
}

func memoryLimit(cfg *Config) uint32 {
	if cfg == nil {
		return 0
	}
	return cfg.MemoryLimitPages
}

// Close releases the runtime and every module still open in it.
func (e *WazeroEngine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Run executes the guest's entry export against mctx. The stack and
// bookkeeping left by the guest stay in mctx after Run returns.
func (e *WazeroEngine) Run(ctx context.Context, wasmBytes []byte, entry string, mctx *machine.Context) (*machine.Run, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	compiled, err := e.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}
	defer compiled.Close(ctx)

	host := binding.New(mctx)
	if err := checkImports(compiled, host); err != nil {
		return nil, err
	}

	hostMod, err := host.Instantiate(ctx, e.runtime)
	if err != nil {
		return nil, err
	}
	defer hostMod.Close(ctx)

	guest, err := e.runtime.InstantiateModule(ctx, compiled,
		wazero.NewModuleConfig().WithName("").WithStartFunctions())
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	defer guest.Close(ctx)

	fn := guest.ExportedFunction(entry)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseRuntime, "export", entry)
	}
	if err := checkEntry(entry, fn.Definition()); err != nil {
		return nil, err
	}

	results, err := fn.Call(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRuntime, errors.KindInvalidData, err, fmt.Sprintf("call %s", entry))
	}

	code := machine.ReturnCode(int8(api.DecodeI32(results[0])))
	Logger().Debug("guest returned",
		zap.String("entry", entry),
		zap.Stringer("code", code),
		zap.Int("stack_cursor", mctx.Stack().Cursor()))
	return &machine.Run{Context: mctx, Code: code}, nil
}

// checkImports reports every imported function the host module cannot satisfy.
func checkImports(compiled wazero.CompiledModule, host *binding.Host) error {
	var missing []string
	for _, def := range compiled.ImportedFunctions() {
		mod, name, _ := def.Import()
		if mod == wordvm.HostModule && host.Provides(name) {
			continue
		}
		missing = append(missing, mod+"#"+name)
	}
	if len(missing) > 0 {
		return errors.NewMissingImportsError(missing)
	}
	return nil
}

func checkEntry(entry string, def api.FunctionDefinition) error {
	results := def.ResultTypes()
	if len(def.ParamTypes()) != 0 || len(results) != 1 || results[0] != api.ValueTypeI32 {
		return errors.InvalidInput(errors.PhaseRuntime,
			fmt.Sprintf("entry %q must have signature () -> i32", entry))
	}
	return nil
}
