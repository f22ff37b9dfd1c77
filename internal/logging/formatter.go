package logging

import (
	"fmt"

	"github.com/fatih/color"
)

// A formatting interface- it is responsible of taking the arguments and composing a message
type Formatter interface {
	Format(ctx *MessageContext, message string, args ...interface{}) string
}

type SimpleFormatter struct {
	FormatString string
}

func (f *SimpleFormatter) Format(ctx *MessageContext, message string, args ...interface{}) string {
	return fmt.Sprintf(f.FormatString, ctx.Level, ctx.TimeStamp.Format("15:04:05.000"), ctx.File, ctx.Line, fmt.Sprintf(message, args...))
}

// ColorFormatter wraps another formatter and colours the level tag.
// Colouring follows color.NoColor, so it turns itself off when stderr is not a terminal.
type ColorFormatter struct {
	Formatter Formatter
}

var levelColors = map[string]*color.Color{
	"DEBUG":   color.New(color.FgHiBlack),
	"INFO":    color.New(color.FgCyan),
	"WARNING": color.New(color.FgYellow),
	"ERROR":   color.New(color.FgRed, color.Bold),
	"NOTICE":  color.New(color.FgGreen),
}

func (f *ColorFormatter) Format(ctx *MessageContext, message string, args ...interface{}) string {
	c, ok := levelColors[ctx.Level]
	if !ok {
		return f.Formatter.Format(ctx, message, args...)
	}
	colored := *ctx
	colored.Level = c.Sprint(ctx.Level)
	return f.Formatter.Format(&colored, message, args...)
}

var DefaultFormatter Formatter = &SimpleFormatter{
	FormatString: "[%[1]s %[2]s %[3]s:%[4]d] %[5]s",
}
