package polyroots

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how FormatReport renders a RootReport.
type Mode int

const (
	// ModeInteractive renders human-readable roots with "(mul. N)" suffixes.
	ModeInteractive Mode = iota
	// ModeMachine renders space-separated value:multiplicity pairs, with
	// sentinel tokens for the degenerate outcomes.
	ModeMachine
)

// Machine-mode sentinel tokens.
const (
	TokenAllReals    = "all"
	TokenNoRoots     = "none"
	TokenUnsupported = "unsupported"
)

// ParseCoefficients builds a Polynomial from numeric tokens supplied highest
// to lowest degree, reversing them into the canonical low-to-high order.
func ParseCoefficients(tokens []string) (Polynomial, error) {
	coeffs := make([]float64, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return Polynomial{}, fmt.Errorf("%w: cannot parse coefficient %q", ErrMalformedInput, tokens[i])
		}
		coeffs = append(coeffs, v)
	}
	return New(coeffs)
}

// FormatReport renders a RootReport in the requested mode.
func FormatReport(r RootReport, mode Mode) string {
	if mode == ModeMachine {
		return formatMachine(r)
	}
	return formatInteractive(r)
}

func formatMachine(r RootReport) string {
	switch r.Kind {
	case AllReals:
		return TokenAllReals
	case NoRoots:
		return TokenNoRoots
	case Unsupported:
		return TokenUnsupported
	}
	parts := make([]string, len(r.Roots))
	for i, root := range r.Roots {
		parts[i] = strconv.FormatFloat(root.Value, 'g', -1, 64) + ":" + strconv.Itoa(root.Multiplicity)
	}
	return strings.Join(parts, " ")
}

func formatInteractive(r RootReport) string {
	switch r.Kind {
	case AllReals:
		return "Every real number is a root."
	case NoRoots:
		return "No real roots."
	case Unsupported:
		return "No recognized structure; numeric root approximation is not implemented."
	}
	var b strings.Builder
	for i, root := range r.Roots {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("x = ")
		b.WriteString(strconv.FormatFloat(root.Value, 'g', -1, 64))
		if root.Multiplicity > 1 {
			fmt.Fprintf(&b, " (mul. %d)", root.Multiplicity)
		}
	}
	return b.String()
}
