// Package inspect renders read-only diagnostic views of a machine context.
//
// Nothing here mutates a context. The number of dumps taken is tracked by a
// Counter owned by the caller, so independent contexts can be inspected
// deterministically.
package inspect

import (
	"fmt"
	"io"

	"github.com/wippyai/wordvm"
	"github.com/wippyai/wordvm/machine"
)

// Counter counts dumps taken through the Dumpers that share it.
type Counter struct {
	n int
}

// Count returns the number of dumps taken so far.
func (c *Counter) Count() int { return c.n }

func (c *Counter) next() int {
	c.n++
	return c.n
}

// Dumper writes a context's bookkeeping fields and the head of its stack
// buffer as hex rows.
type Dumper struct {
	counter  *Counter
	Rows     int
	RowBytes int
}

// NewDumper creates a dumper with the default three 256-byte rows. A nil
// counter gets a private one.
func NewDumper(c *Counter) *Dumper {
	if c == nil {
		c = &Counter{}
	}
	return &Dumper{
		counter:  c,
		Rows:     wordvm.DumpRows,
		RowBytes: wordvm.DumpRowBytes,
	}
}

// Counter returns the dumper's counter.
func (d *Dumper) Counter() *Counter { return d.counter }

// HexRows returns the first Rows*RowBytes bytes of the stack buffer as
// uppercase hex, one string per row. Rows stop at the stack's capacity, so
// the last row may be short and fewer rows may be returned.
func (d *Dumper) HexRows(ctx *machine.Context) []string {
	data := ctx.Stack().Bytes()
	if d.RowBytes <= 0 || d.Rows <= 0 {
		return nil
	}
	limit := min(d.Rows*d.RowBytes, len(data))

	rows := make([]string, 0, d.Rows)
	for off := 0; off < limit; off += d.RowBytes {
		end := min(off+d.RowBytes, limit)
		rows = append(rows, fmt.Sprintf("%X", data[off:end]))
	}
	return rows
}

// Dump writes the context to w and advances the counter.
func (d *Dumper) Dump(w io.Writer, ctx *machine.Context) error {
	n := d.counter.next()
	_, err := fmt.Fprintf(w,
		"Dump #%d\n"+
			"Stack Pointer: %d\n"+
			"JumpPtr: %d\n"+
			"Return Offset: %d\n"+
			"Return Length: %d\n",
		n, ctx.Stack().Cursor(), ctx.JumpPtr(), ctx.ReturnOffset(), ctx.ReturnLength())
	if err != nil {
		return err
	}
	for _, row := range d.HexRows(ctx) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// Words writes the live words of the stack, top first, one per line in
// buffer order.
func Words(w io.Writer, ctx *machine.Context) error {
	st := ctx.Stack()
	data := st.Bytes()
	width := st.WordWidth()
	for i := st.Len() - 1; i >= 0; i-- {
		off := i * width
		if _, err := fmt.Fprintf(w, "%4d: %X\n", st.Len()-1-i, data[off:off+width]); err != nil {
			return err
		}
	}
	return nil
}
