package construct

import "fmt"

// DefaultFixedBound is the number of rows FixedBound clearing erased in the
// original fixed-bound router.
const DefaultFixedBound = 999

// Clearing selects how much previous output is erased before a view is shown.
//
// Exact erases the rows the Terminal tracked since the last clear and is the
// default. Only output that went through the Terminal is tracked: input the
// tty echoes while a view reads from it must be reported with
// Terminal.Echoed, otherwise the top rows of the previous view are left
// behind. FixedBound always erases the same number of rows; it leaves residue
// when more rows than the bound were written and should only be used when
// the output cannot be tracked (for example when views write to the
// underlying file directly).
type Clearing struct {
	fixed bool
	bound int
}

// Exact returns the clearing strategy that erases exactly what was written.
func Exact() Clearing {
	return Clearing{}
}

// FixedBound returns a strategy that unconditionally erases n rows.
// Negative values are treated as zero, which only erases the current row.
func FixedBound(n int) Clearing {
	if n < 0 {
		n = 0
	}
	return Clearing{fixed: true, bound: n}
}

// IsExact reports whether c is the exact strategy.
func (c Clearing) IsExact() bool {
	return !c.fixed
}

// Bound returns the row count of a fixed-bound strategy, or 0 for Exact.
func (c Clearing) Bound() int {
	return c.bound
}

func (c Clearing) String() string {
	if c.fixed {
		return fmt.Sprintf("fixed(%d)", c.bound)
	}
	return "exact"
}
