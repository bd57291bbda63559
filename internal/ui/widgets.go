package ui

import "github.com/a-h/templ"

// Server renderings of the library's components, used in previews.

type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

var badgeVariants = map[BadgeVariant]string{
	BadgeDefault:     "border-transparent bg-zinc-900 text-zinc-50 hover:bg-zinc-900/80",
	BadgeSecondary:   "border-transparent bg-zinc-100 text-zinc-900 hover:bg-zinc-100/80",
	BadgeDestructive: "border-transparent bg-red-500 text-zinc-50 hover:bg-red-500/80",
	BadgeOutline:     "text-zinc-950",
}

const badgeBase = "inline-flex items-center rounded-md border px-2.5 py-0.5 text-xs font-semibold transition-colors"

// Badge renders a badge; unknown variants fall back to the default one.
func Badge(variant BadgeVariant, text string) templ.Component {
	if _, ok := badgeVariants[variant]; !ok {
		variant = BadgeDefault
	}
	return badge(variant, text)
}

type InputProps struct {
	ID          string
	Type        string
	Placeholder string
	Disabled    bool
}

func (p InputProps) inputType() string {
	if p.Type == "" {
		return "text"
	}
	return p.Type
}
