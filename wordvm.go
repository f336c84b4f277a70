package wordvm

// Machine geometry. A word is 256 bits wide and a context stack holds 1024 of them.
const (
	WordSizeBits   = 256
	WordSizeBytes  = WordSizeBits / 8
	StackSizeWords = 1024
	StackSizeBytes = WordSizeBytes * StackSizeWords
)

// Diagnostic dump geometry: the first DumpRows*DumpRowBytes bytes of a stack.
const (
	DumpRows     = 3
	DumpRowBytes = 256
)

// HostModule is the import module name guests use to reach the stack.
const HostModule = "wordvm"
