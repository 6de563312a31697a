package cli

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"
)

// ColorScheme is fang's default scheme with cvgen's accent colors.
func ColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	cs := fang.DefaultColorScheme(c)
	cs.Title = charmtone.Malibu
	cs.Program = c(charmtone.Charple, charmtone.Guppy)
	cs.Command = c(lipgloss.Color("#0CB37F"), charmtone.Guac)
	cs.Flag = c(charmtone.Pony, charmtone.Cheeky)
	cs.ErrorDetails = c(charmtone.Charcoal, charmtone.Salt)

	return cs
}
