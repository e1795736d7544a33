// Utilities for formatting typed values in a terminal
package terminal

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/crosspay/ledgercodec/data"
)

type Flag uint32

const (
	Indent Flag = 1 << iota
	DoubleIndent

	ShowFieldName
)

var Default Flag

var (
	amountStyle  = color.New(color.FgMagenta)
	pathStyle    = color.New(color.FgYellow)
	hashStyle    = color.New(color.FgWhite)
	integerStyle = color.New(color.FgGreen)
	infoStyle    = color.New(color.FgRed)
)

type bundle struct {
	color  *color.Color
	format string
	values []interface{}
	flag   Flag
}

func newBundle(v data.SerializedType, flag Flag) *bundle {
	var (
		style  = infoStyle
		format = "%s"
		values = []interface{}{v.Text()}
	)
	switch st := v.(type) {
	case *data.Amount:
		style = amountStyle
		format = "%-34s"
		values = []interface{}{st.FullText()}
	case *data.PathSet:
		style = pathStyle
		format = "%d paths: %s"
		values = []interface{}{st.Size(), st.Text()}
	case *data.UInt8Value, *data.UInt16Value, *data.UInt32Value, *data.UInt64Value:
		style = integerStyle
	case *data.Hash128Value, *data.Hash160Value, *data.Hash256Value, *data.Vector256Value:
		style = hashStyle
	}
	return &bundle{
		color:  style,
		format: format,
		values: values,
		flag:   flag,
	}
}

func indent(flag Flag) string {
	switch {
	case flag&Indent > 0:
		return "  "
	case flag&DoubleIndent > 0:
		return "    "
	default:
		return ""
	}
}

// Render formats a typed value as a colorized one-liner.
func Render(v data.SerializedType, flag Flag) string {
	b := newBundle(v, flag)
	out := b.color.SprintfFunc()(b.format, b.values...)
	if flag&ShowFieldName > 0 {
		out = fmt.Sprintf("%-18s %s", v.FName().Name, out)
	}
	return indent(flag) + out
}

// Println writes the rendering of each value on its own line.
func Println(flag Flag, values ...data.SerializedType) {
	for _, v := range values {
		fmt.Println(Render(v, flag))
	}
}
