package machine

import "strconv"

// ReturnCode is the outcome of a guest call.
//   - Negative values are machine-level failures.
//   - Values below 64 are successes.
//   - Values from 64 up are guest-level failures.
type ReturnCode int8

const (
	InvalidJumpBlock ReturnCode = -1

	ImplicitReturn ReturnCode = 0
	ExplicitReturn ReturnCode = 1
	Stop           ReturnCode = 2

	Revert      ReturnCode = 64
	Invalid     ReturnCode = 65
	JumpFailure ReturnCode = 66
)

// IsSuccess reports whether the call completed without failure.
func (r ReturnCode) IsSuccess() bool {
	return r >= 0 && r < 64
}

// IsFailure reports whether the call failed at either level.
func (r ReturnCode) IsFailure() bool {
	return !r.IsSuccess()
}

func (r ReturnCode) String() string {
	switch r {
	case InvalidJumpBlock:
		return "invalid-jump-block"
	case ImplicitReturn:
		return "implicit-return"
	case ExplicitReturn:
		return "explicit-return"
	case Stop:
		return "stop"
	case Revert:
		return "revert"
	case Invalid:
		return "invalid"
	case JumpFailure:
		return "jump-failure"
	}
	return "return-code(" + strconv.Itoa(int(r)) + ")"
}

// Run is the result of running a guest against a context.
type Run struct {
	Context *Context
	Code    ReturnCode
}
