package binding

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wordvm/errors"
)

func (h *Host) stackPush(_ context.Context, m api.Module, stack []uint64) {
	st := h.mctx.Stack()
	ptr := api.DecodeU32(stack[0])
	mem, ok := guestMemory(m, ptr, uint32(st.WordWidth()))
	if !ok {
		h.badPointer("stack_push", m, ptr)
		stack[0] = resultError
		return
	}
	word, _ := mem.Read(ptr, uint32(st.WordWidth()))
	if !st.Push(word) {
		h.overflow("stack_push")
		stack[0] = resultError
		return
	}
	stack[0] = resultOK
}

func (h *Host) stackPop(_ context.Context, m api.Module, stack []uint64) {
	st := h.mctx.Stack()
	ptr := api.DecodeU32(stack[0])
	mem, ok := guestMemory(m, ptr, uint32(st.WordWidth()))
	if !ok {
		h.badPointer("stack_pop", m, ptr)
		stack[0] = resultError
		return
	}
	if !st.Pop(h.word) {
		h.underflow("stack_pop", errors.PhasePop)
		stack[0] = resultError
		return
	}
	mem.Write(ptr, h.word)
	stack[0] = resultOK
}

func (h *Host) stackPeek(_ context.Context, m api.Module, stack []uint64) {
	st := h.mctx.Stack()
	idx := api.DecodeU32(stack[0])
	ptr := api.DecodeU32(stack[1])
	mem, ok := guestMemory(m, ptr, uint32(st.WordWidth()))
	if !ok {
		h.badPointer("stack_peek", m, ptr)
		stack[0] = resultError
		return
	}
	if !st.Peek(int(idx), h.word) {
		fail("stack_peek", func() error {
			return errors.OutOfBounds(errors.PhasePeek, []string{"stack_peek", "idx"}, int(idx), st.Len())
		})
		stack[0] = resultError
		return
	}
	mem.Write(ptr, h.word)
	stack[0] = resultOK
}

func (h *Host) stackSwap(_ context.Context, _ api.Module, stack []uint64) {
	st := h.mctx.Stack()
	idx := api.DecodeU32(stack[0])
	if !st.Swap(int(idx)) {
		fail("stack_swap", func() error {
			return errors.OutOfBounds(errors.PhaseSwap, []string{"stack_swap", "idx"}, int(idx), st.Len())
		})
		stack[0] = resultError
		return
	}
	stack[0] = resultOK
}

func (h *Host) stackPushI8(_ context.Context, _ api.Module, stack []uint64) {
	if !h.mctx.Stack().PushInt8(int8(api.DecodeI32(stack[0]))) {
		h.overflow("stack_push_i8")
		stack[0] = resultError
		return
	}
	stack[0] = resultOK
}

func (h *Host) stackPushI16(_ context.Context, _ api.Module, stack []uint64) {
	if !h.mctx.Stack().PushInt16(int16(api.DecodeI32(stack[0]))) {
		h.overflow("stack_push_i16")
		stack[0] = resultError
		return
	}
	stack[0] = resultOK
}

func (h *Host) stackPopI8(_ context.Context, m api.Module, stack []uint64) {
	ptr := api.DecodeU32(stack[0])
	mem, ok := guestMemory(m, ptr, 1)
	if !ok {
		h.badPointer("stack_pop_i8", m, ptr)
		stack[0] = resultError
		return
	}
	v, ok := h.mctx.Stack().PopInt8()
	if !ok {
		h.underflow("stack_pop_i8", errors.PhasePop)
		stack[0] = resultError
		return
	}
	mem.WriteByte(ptr, byte(v))
	stack[0] = resultOK
}

func (h *Host) stackPopI16(_ context.Context, m api.Module, stack []uint64) {
	ptr := api.DecodeU32(stack[0])
	mem, ok := guestMemory(m, ptr, 2)
	if !ok {
		h.badPointer("stack_pop_i16", m, ptr)
		stack[0] = resultError
		return
	}
	v, ok := h.mctx.Stack().PopInt16()
	if !ok {
		h.underflow("stack_pop_i16", errors.PhasePop)
		stack[0] = resultError
		return
	}
	mem.WriteUint16Le(ptr, uint16(v))
	stack[0] = resultOK
}

func (h *Host) stackSize(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeU32(uint32(h.mctx.Stack().Cursor()))
}

func (h *Host) setJump(_ context.Context, _ api.Module, stack []uint64) {
	h.mctx.SetJumpPtr(api.DecodeU32(stack[0]))
}

func (h *Host) setReturn(_ context.Context, _ api.Module, stack []uint64) {
	h.mctx.SetReturn(api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
}
