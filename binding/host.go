package binding

import (
	"context"
	"reflect"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wordvm"
	"github.com/wippyai/wordvm/errors"
	"github.com/wippyai/wordvm/machine"
)

var (
	i32         = api.ValueTypeI32
	noValues    = []api.ValueType{}
	oneI32      = []api.ValueType{i32}
	twoI32      = []api.ValueType{i32, i32}
	resultOK    = uint64(1)
	resultError = uint64(0)
)

type hostFunc struct {
	fn         api.GoModuleFunc
	name       string
	params     []api.ValueType
	results    []api.ValueType
	paramNames []string
}

// Host implements the "wordvm" host module over one context.
type Host struct {
	mctx  *machine.Context
	word  []byte
	funcs []hostFunc
}

// New creates a host bound to mctx.
func New(mctx *machine.Context) *Host {
	h := &Host{
		mctx: mctx,
		word: make([]byte, mctx.Stack().WordWidth()),
	}
	h.funcs = []hostFunc{
		{h.stackPush, "stack_push", oneI32, oneI32, []string{"ptr"}},
		{h.stackPop, "stack_pop", oneI32, oneI32, []string{"ptr"}},
		{h.stackPeek, "stack_peek", twoI32, oneI32, []string{"idx", "ptr"}},
		{h.stackSwap, "stack_swap", oneI32, oneI32, []string{"idx"}},
		{h.stackPushI8, "stack_push_i8", oneI32, oneI32, []string{"value"}},
		{h.stackPushI16, "stack_push_i16", oneI32, oneI32, []string{"value"}},
		{h.stackPopI8, "stack_pop_i8", oneI32, oneI32, []string{"ptr"}},
		{h.stackPopI16, "stack_pop_i16", oneI32, oneI32, []string{"ptr"}},
		{h.stackSize, "stack_size", noValues, oneI32, nil},
		{h.setJump, "set_jump", oneI32, noValues, []string{"ptr"}},
		{h.setReturn, "set_return", twoI32, noValues, []string{"offset", "length"}},
	}
	return h
}

// Context returns the context the host is bound to.
func (h *Host) Context() *machine.Context { return h.mctx }

// Names returns the exported function names, sorted.
func (h *Host) Names() []string {
	names := make([]string, 0, len(h.funcs))
	for _, f := range h.funcs {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// Provides reports whether the host module exports name.
func (h *Host) Provides(name string) bool {
	for _, f := range h.funcs {
		if f.name == name {
			return true
		}
	}
	return false
}

// Instantiate registers the host module in r under wordvm.HostModule.
// Only one host module can be instantiated per runtime at a time; close the
// returned module before instantiating another.
func (h *Host) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	builder := r.NewHostModuleBuilder(wordvm.HostModule)
	for _, f := range h.funcs {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(f.fn, f.params, f.results).
			WithParameterNames(f.paramNames...).
			Export(f.name)
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBinding, errors.KindInstantiation, err, "instantiate host module")
	}
	Logger().Debug("host module instantiated",
		zap.String("module", wordvm.HostModule),
		zap.Int("functions", len(h.funcs)),
		zap.Int("word_bytes", h.mctx.Stack().WordWidth()),
		zap.Int("capacity_bytes", h.mctx.Stack().Cap()))
	return mod, nil
}

// isValidMemory checks if a memory interface is non-nil and not a typed nil.
// A module without memory reports a typed nil from Memory().
func isValidMemory(mem api.Memory) bool {
	if mem == nil {
		return false
	}
	return !reflect.ValueOf(mem).IsNil()
}

// callerMemory returns the caller's memory, or nil when it has none.
func callerMemory(m api.Module) api.Memory {
	if m == nil {
		return nil
	}
	if mem := m.Memory(); isValidMemory(mem) {
		return mem
	}
	return nil
}

// guestMemory returns the caller's memory when [ptr, ptr+n) lies inside it.
func guestMemory(m api.Module, ptr, n uint32) (api.Memory, bool) {
	mem := callerMemory(m)
	if mem == nil || uint64(ptr)+uint64(n) > uint64(mem.Size()) {
		return nil, false
	}
	return mem, true
}

func memorySize(m api.Module) int {
	mem := callerMemory(m)
	if mem == nil {
		return 0
	}
	return int(mem.Size())
}

// fail logs a failed host call at debug level. The error is only built when
// debug logging is enabled.
func fail(name string, build func() error) {
	if ce := Logger().Check(zap.DebugLevel, "host call failed"); ce != nil {
		ce.Write(zap.String("func", name), zap.Error(build()))
	}
}

func (h *Host) overflow(name string) {
	st := h.mctx.Stack()
	fail(name, func() error { return errors.Overflow(errors.PhasePush, st.Cursor(), st.Cap()) })
}

func (h *Host) underflow(name string, phase errors.Phase) {
	st := h.mctx.Stack()
	fail(name, func() error { return errors.Underflow(phase, st.Cursor()) })
}

func (h *Host) badPointer(name string, m api.Module, ptr uint32) {
	fail(name, func() error {
		return errors.OutOfBounds(errors.PhaseBinding, []string{name, "ptr"}, int(ptr), memorySize(m))
	})
}
