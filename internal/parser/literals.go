package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"shrink/internal/ast"
)

// parseNumber evaluates a numeric literal as written in source.
func parseNumber(raw string) (float64, ast.NumberBase, bool) {
	text := strings.ReplaceAll(raw, "_", "")
	if len(text) > 2 && text[0] == '0' {
		var (
			base ast.NumberBase
			bits int
		)
		switch text[1] {
		case 'x', 'X':
			base, bits = ast.BaseHex, 16
		case 'o', 'O':
			base, bits = ast.BaseOctal, 8
		case 'b', 'B':
			base, bits = ast.BaseBinary, 2
		}
		if bits != 0 {
			v, ok := parseRadix(text[2:], bits)
			return v, base, ok
		}
	}
	base := ast.BaseDecimal
	if strings.ContainsAny(text, ".eE") {
		base = ast.BaseFloat
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, base, true
		}
		return 0, base, false
	}
	return v, base, true
}

// parseRadix accumulates digits as a float so values past 2^64 stay approximate instead of failing.
func parseRadix(digits string, radix int) (float64, bool) {
	if digits == "" {
		return 0, false
	}
	if v, err := strconv.ParseUint(digits, radix, 64); err == nil {
		return float64(v), true
	}
	var acc float64
	for _, c := range digits {
		d, err := strconv.ParseUint(string(c), radix, 8)
		if err != nil {
			return 0, false
		}
		acc = acc*float64(radix) + float64(d)
	}
	return acc, !math.IsInf(acc, 0)
}

// decodeString strips quotes and resolves escape sequences. Lone surrogates
// from \u escapes are replaced with U+FFFD.
func decodeString(raw string) string {
	if len(raw) < 2 {
		return ""
	}
	quote := raw[0]
	body := raw[1:]
	if body[len(body)-1] == quote {
		body = body[:len(body)-1]
	}
	if !strings.Contains(body, `\`) {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	var units []uint16
	flush := func() {
		if len(units) > 0 {
			sb.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			flush()
			r, size := utf8.DecodeRuneInString(body[i:])
			sb.WriteRune(r)
			i += size
			continue
		}
		i++
		esc := body[i]
		i++
		switch esc {
		case 'n':
			flush()
			sb.WriteByte('\n')
		case 't':
			flush()
			sb.WriteByte('\t')
		case 'r':
			flush()
			sb.WriteByte('\r')
		case 'b':
			flush()
			sb.WriteByte('\b')
		case 'f':
			flush()
			sb.WriteByte('\f')
		case 'v':
			flush()
			sb.WriteByte('\v')
		case '0':
			flush()
			sb.WriteByte(0)
		case '\r':
			// line continuation
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			flush()
			if i+2 <= len(body) {
				if v, err := strconv.ParseUint(body[i:i+2], 16, 8); err == nil {
					sb.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			sb.WriteByte('x')
		case 'u':
			if i < len(body) && body[i] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end > 0 {
					if v, err := strconv.ParseUint(body[i+1:i+end], 16, 32); err == nil && v <= utf8.MaxRune {
						flush()
						sb.WriteRune(rune(v))
						i += end + 1
						continue
					}
				}
			} else if i+4 <= len(body) {
				if v, err := strconv.ParseUint(body[i:i+4], 16, 16); err == nil {
					units = append(units, uint16(v))
					i += 4
					continue
				}
			}
			flush()
			sb.WriteByte('u')
		default:
			flush()
			r, size := utf8.DecodeRuneInString(body[i-1:])
			sb.WriteRune(r)
			i += size - 1
		}
	}
	flush()
	return sb.String()
}
