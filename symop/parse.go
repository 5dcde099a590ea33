package symop

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParseOp indicates a malformed "x,y,z" triplet string.
var ErrParseOp = errors.New("symop: malformed symmetry operator triplet")

// Parse reads an operator in conventional triplet notation: three
// comma-separated components, each a sum of signed terms. A term is either
// a coordinate symbol x, y or z (optionally with an integer or fractional
// coefficient, e.g. "2y") or a pure translation written as an integer,
// a fraction "n/d", or a decimal.
//
// Examples:
//
//	Parse("x,y,z")            // identity
//	Parse("-x, y+1/2, -z")    // 2₁ screw along b
//	Parse("y-x, -x, z+2/3")   // rhombohedral setting component
//
// Whitespace is ignored; symbols are case-insensitive.
//
// Errors: ErrParseOp (wrapped with the offending component) when the string
// does not have exactly three components, a component is empty, or a token
// cannot be read.
func Parse(s string) (Op, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Op{}, fmt.Errorf("%w: want 3 components, got %d in %q", ErrParseOp, len(parts), s)
	}
	var op Op
	for row, part := range parts {
		if err := parseComponent(part, row, &op); err != nil {
			return Op{}, err
		}
	}
	return op, nil
}

// parseComponent folds one component (e.g. "-x+1/2") into row `row` of op.
func parseComponent(part string, row int, op *Op) error {
	s := strings.ToLower(strings.Map(dropSpace, part))
	if s == "" {
		return fmt.Errorf("%w: empty component %d", ErrParseOp, row+1)
	}
	i := 0
	for i < len(s) {
		sign := 1.0
		for i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				sign = -sign
			}
			i++
		}
		if i == len(s) {
			return fmt.Errorf("%w: dangling sign in component %q", ErrParseOp, part)
		}

		// Optional numeric factor: integer, decimal, or fraction.
		value, hasValue, next, err := scanNumber(s, i)
		if err != nil {
			return fmt.Errorf("%w: %v in component %q", ErrParseOp, err, part)
		}
		i = next

		if i < len(s) && (s[i] == 'x' || s[i] == 'y' || s[i] == 'z') {
			coef := sign
			if hasValue {
				coef = sign * value
			}
			op.R[3*row+int(s[i]-'x')] += coef
			i++
			continue
		}
		if !hasValue {
			return fmt.Errorf("%w: unexpected %q in component %q", ErrParseOp, string(s[i]), part)
		}
		op.T[row] += sign * value
	}
	return nil
}

// scanNumber reads an optional integer/decimal/fraction starting at i.
func scanNumber(s string, i int) (value float64, ok bool, next int, err error) {
	j := i
	for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
		j++
	}
	if j == i {
		return 0, false, i, nil
	}
	num, convErr := strconv.ParseFloat(s[i:j], 64)
	if convErr != nil {
		return 0, false, i, fmt.Errorf("bad number %q", s[i:j])
	}
	if j < len(s) && s[j] == '/' {
		k := j + 1
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		den, convErr := strconv.ParseFloat(s[j+1:k], 64)
		if convErr != nil || den == 0 {
			return 0, false, i, fmt.Errorf("bad denominator %q", s[j+1:k])
		}
		return num / den, true, k, nil
	}
	return num, true, j, nil
}

func dropSpace(r rune) rune {
	if r == ' ' || r == '\t' {
		return -1
	}
	return r
}

// String renders the operator back in triplet notation. Rotation
// coefficients of ±1 print as bare symbols; translations print as the
// smallest fraction n/d with d ≤ 12 that matches to 1e-10, falling back to
// decimal otherwise. Parse(op.String()) reproduces op exactly for operators
// with small-rational entries.
func (o Op) String() string {
	var rows [3]string
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for axis := 0; axis < 3; axis++ {
			coef := o.R[3*row+axis]
			if coef == 0 {
				continue
			}
			writeSigned(&b, coef, b.Len() > 0)
			b.WriteByte(byte('x' + axis))
		}
		if t := o.T[row]; t != 0 {
			if b.Len() > 0 && t > 0 {
				b.WriteByte('+')
			}
			b.WriteString(formatTranslation(t))
		}
		if b.Len() == 0 {
			b.WriteByte('0')
		}
		rows[row] = b.String()
	}
	return rows[0] + "," + rows[1] + "," + rows[2]
}

// writeSigned emits the sign and, unless the magnitude is 1, the magnitude
// of a rotation coefficient.
func writeSigned(b *strings.Builder, coef float64, needPlus bool) {
	if coef < 0 {
		b.WriteByte('-')
		coef = -coef
	} else if needPlus {
		b.WriteByte('+')
	}
	if coef != 1 {
		b.WriteString(strconv.FormatFloat(coef, 'g', -1, 64))
	}
}

// formatTranslation prints |t| as n/d when a small denominator fits.
func formatTranslation(t float64) string {
	neg := t < 0
	if neg {
		t = -t
	}
	for den := 1; den <= 12; den++ {
		num := t * float64(den)
		if math.Abs(num-math.Round(num)) < 1e-10 {
			s := strconv.Itoa(int(math.Round(num)))
			if den > 1 {
				s += "/" + strconv.Itoa(den)
			}
			if neg {
				s = "-" + s
			}
			return s
		}
	}
	if neg {
		t = -t
	}
	return strconv.FormatFloat(t, 'g', -1, 64)
}
