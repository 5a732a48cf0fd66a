// Package redisgen generates the companion key-value dataset: one
// insertion command per line covering every Redis data shape, drawn from
// the same class of seeded generation as the relational tables.
package redisgen

import (
	"fmt"
	"strconv"
	"strings"
)

type argStyle int

const (
	styleBare argStyle = iota
	styleQuoted
	styleSingleQuoted
)

// Arg is one argv element. The style only affects text rendering; the raw
// value is what gets sent when commands are applied to a live server.
type Arg struct {
	value string
	style argStyle
}

func bare(v string) Arg   { return Arg{value: v} }
func quoted(v string) Arg { return Arg{value: v, style: styleQuoted} }
func squoted(v string) Arg {
	return Arg{value: v, style: styleSingleQuoted}
}

func num(v int) Arg       { return bare(strconv.Itoa(v)) }
func num64(v int64) Arg   { return bare(strconv.FormatInt(v, 10)) }
func fixed2(v float64) Arg { return bare(fmt.Sprintf("%.2f", v)) }
func fixed6(v float64) Arg { return bare(fmt.Sprintf("%.6f", v)) }

// Command is a single insertion command modelled as argv, renderable to
// the init file format or executable through a client as-is.
type Command struct {
	Args []Arg
}

func cmd(args ...Arg) Command {
	return Command{Args: args}
}

// Render produces the textual form: bare tokens as-is, quoted payloads in
// double quotes with inner quotes escaped, large documents in single
// quotes.
func (c Command) Render() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		switch a.style {
		case styleQuoted:
			parts[i] = `"` + strings.ReplaceAll(a.value, `"`, `\"`) + `"`
		case styleSingleQuoted:
			parts[i] = "'" + a.value + "'"
		default:
			parts[i] = a.value
		}
	}
	return strings.Join(parts, " ")
}

// Argv returns the raw values for client execution.
func (c Command) Argv() []any {
	argv := make([]any, len(c.Args))
	for i, a := range c.Args {
		argv[i] = a.value
	}
	return argv
}
