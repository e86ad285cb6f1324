// Copyright 2026 The Routebind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/common-nighthawk/go-figure"
)

// colorWriter wraps w so styled output is downsampled to the terminal's
// capabilities. Production strips ANSI sequences entirely.
func (a *App) colorWriter(w io.Writer) *colorprofile.Writer {
	cpw := colorprofile.NewWriter(w, os.Environ())
	if a.config.environment == EnvironmentProduction {
		cpw.Profile = colorprofile.NoTTY
	}
	return cpw
}

// printBanner prints the development startup banner to stdout. It is called
// by [App.Run].
func (a *App) printBanner(addr string) {
	a.writeBanner(os.Stdout, addr)
}

// writeBanner renders the banner: ASCII art of the service name, the service
// metadata, and the table of bound routes.
func (a *App) writeBanner(out io.Writer, addr string) {
	w := a.colorWriter(out)

	art := figure.NewFigure(a.config.serviceName, "", false)
	artStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	for _, line := range art.Slicify() {
		fmt.Fprintln(w, artStyle.Render(line))
	}

	displayAddr := addr
	if strings.HasPrefix(addr, ":") {
		displayAddr = "0.0.0.0" + addr
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(12).PaddingLeft(2)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("Version:")+" "+valueStyle.Render(a.config.serviceVersion))
	fmt.Fprintln(w, labelStyle.Render("Env:")+" "+valueStyle.Render(a.config.environment))
	fmt.Fprintln(w, labelStyle.Render("Address:")+" "+valueStyle.Render("http://"+displayAddr))
	fmt.Fprintln(w)

	routes := a.Routes()
	if len(routes) == 0 {
		fmt.Fprintln(w, labelStyle.Render("Routes:")+" "+valueStyle.Render("none"))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("METHOD", "PATH", "CONTROLLER", "KEY")
	for _, rt := range routes {
		t.Row(rt.Verb, rt.Path, rt.Identity, rt.Key)
	}
	fmt.Fprintln(w, t.Render())
}
