package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	AddedColor ColorAttr = iota
	RemovedColor
	ChangedColor
	PathColor
	NumPathColor
	KeyColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[AddedColor] = color.GreenString
	colors.Map[RemovedColor] = color.RedString
	colors.Map[ChangedColor] = color.YellowString
	colors.Map[PathColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[NumPathColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[KeyColor] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(s string, _ ...any) string {
	return s
}
