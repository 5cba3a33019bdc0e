// Package vpnsheet builds the Azure/AWS site-to-site VPN setup workbook and
// reads such workbooks back for inspection and verification.
package vpnsheet

import (
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/layout"
	"go.uber.org/zap"
)

// DefaultOutput is the file name used when no output path is given.
const DefaultOutput = "AWS_Azure_VPN_Setup.xlsx"

// HeaderStyle describes the formatting applied to every sheet's first row.
type HeaderStyle struct {
	// Bold sets the font weight.
	Bold bool
	// FontColor is the RGB font color, e.g. "FFFFFF".
	FontColor string
	// FillColor is the RGB solid fill color, e.g. "366092".
	FillColor string
}

// DefaultHeaderStyle returns bold white text on a #366092 solid fill.
func DefaultHeaderStyle() HeaderStyle {
	return HeaderStyle{
		Bold:      true,
		FontColor: "FFFFFF",
		FillColor: "366092",
	}
}

// Options configures workbook building.
type Options struct {
	// Header is the header row style. The zero value means DefaultHeaderStyle.
	Header HeaderStyle
	// WidthPadding is added to the longest cell text of each column.
	// If nil, defaults to layout.DefaultPadding.
	WidthPadding *int
	// FreezeHeader keeps the header row visible while scrolling.
	FreezeHeader bool
	// PrintArea defines each sheet's table range as its print area.
	PrintArea bool
	// Logger receives build progress. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Header: DefaultHeaderStyle(),
	}
}

// HeaderStyleOrDefault returns the configured header style.
func (o Options) HeaderStyleOrDefault() HeaderStyle {
	if o.Header == (HeaderStyle{}) {
		return DefaultHeaderStyle()
	}
	return o.Header
}

// Padding returns the column width padding.
func (o Options) Padding() int {
	if o.WidthPadding != nil {
		return *o.WidthPadding
	}
	return layout.DefaultPadding
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Mode represents the inspection depth.
type Mode string

const (
	// ModeLight reads cells and table candidates only.
	ModeLight Mode = "light"
	// ModeStandard also reads column widths, header styles, print areas and row counts.
	ModeStandard Mode = "standard"
	// ModeVerbose also reads the style of every styled cell, header or not.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), true
	}
	return "", false
}

// InspectOptions configures workbook inspection.
type InspectOptions struct {
	// Mode specifies the inspection depth (light, standard, verbose).
	Mode Mode
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
	// Logger receives per-sheet warnings. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultInspectOptions returns default inspection options.
func DefaultInspectOptions() InspectOptions {
	return InspectOptions{
		Mode: ModeStandard,
	}
}

// ShouldIncludeLayout returns whether to read widths, styles and row counts.
func (o InspectOptions) ShouldIncludeLayout() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeBodyStyles returns whether to read styles below the header row.
func (o InspectOptions) ShouldIncludeBodyStyles() bool {
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o InspectOptions) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

func (o InspectOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
