package site

import (
	"github.com/a-h/templ"

	"github.com/testingcanx/docsite/internal/ui"
)

const installCommand = "npm install -D testingcanxjs"

func introductionContent() templ.Component {
	return ui.Fragment(
		ui.Prose(`testingcanx is a collection of re-usable components built on top of
Tailwind CSS. It is **not** a component library you install and forget: you
pick the components you need, and the code is yours to adapt.

Start with the [installation guide](/docs/installation), then browse the
components in the sidebar.`),
		ui.Section("faq", "FAQ",
			ui.Prose(`**Which frameworks are supported?** Any React setup that can
compile TSX and run Tailwind CSS.

**Can I use it in my project?** Yes. It's free to use for personal and
commercial projects.`),
		),
	)
}

func installationContent() templ.Component {
	return ui.Fragment(
		ui.Section("install", "Install the package",
			ui.Prose("Add the library as a development dependency:"),
			ui.CodeBlock(installCommand, "bash"),
		),
		ui.Section("tailwind", "Configure Tailwind CSS",
			ui.Prose("Register the preset in `tailwind.config.js` so the component styles are generated:"),
			ui.CodeBlock(`/** @type {import('tailwindcss').Config} */
module.exports = {
  presets: [require("testingcanxjs/preset")],
  content: ["./src/**/*.{ts,tsx}"],
}`, "js"),
		),
		ui.Section("usage", "Use a component",
			ui.Prose("Import components from the package and render them like any other React component:"),
			ui.CodeBlock(`import { Badge } from "testingcanxjs"

export default function App() {
  return <Badge>It works</Badge>
}`, "tsx"),
		),
	)
}

func badgeContent() templ.Component {
	return ui.Fragment(
		ui.ComponentPreview(ui.PreviewProps{Name: "badge", Source: `<Badge>Badge</Badge>`},
			ui.Badge(ui.BadgeDefault, "Badge")),
		ui.Section("usage", "Usage",
			ui.CodeBlock(`import { Badge } from "testingcanxjs"`, "tsx"),
			ui.CodeBlock(`<Badge variant="outline">Badge</Badge>`, "tsx"),
		),
		ui.Section("examples", "Examples",
			ui.ComponentPreview(ui.PreviewProps{Name: "badge-secondary", Source: `<Badge variant="secondary">Secondary</Badge>`},
				ui.Badge(ui.BadgeSecondary, "Secondary")),
			ui.ComponentPreview(ui.PreviewProps{Name: "badge-destructive", Source: `<Badge variant="destructive">Destructive</Badge>`},
				ui.Badge(ui.BadgeDestructive, "Destructive")),
			ui.ComponentPreview(ui.PreviewProps{Name: "badge-outline", Source: `<Badge variant="outline">Outline</Badge>`},
				ui.Badge(ui.BadgeOutline, "Outline")),
		),
	)
}

func inputContent() templ.Component {
	return ui.Fragment(
		ui.ComponentPreview(ui.PreviewProps{Name: "input", Source: `<Input type="email" placeholder="Email" />`},
			ui.Input(ui.InputProps{Type: "email", Placeholder: "Email"})),
		ui.Section("usage", "Usage",
			ui.CodeBlock(`import { Input } from "testingcanxjs"`, "tsx"),
			ui.CodeBlock(`<Input />`, "tsx"),
		),
		ui.Section("examples", "Examples",
			ui.ComponentPreview(ui.PreviewProps{Name: "input-disabled", Source: `<Input disabled type="email" placeholder="Email" />`},
				ui.Input(ui.InputProps{Type: "email", Placeholder: "Email", Disabled: true})),
			ui.ComponentPreview(ui.PreviewProps{Name: "input-with-label", Source: `<div className="grid w-full max-w-sm items-center gap-1.5">
  <Label htmlFor="email">Email</Label>
  <Input type="email" id="email" placeholder="Email" />
</div>`},
				ui.Field(ui.Label("email", "Email"), ui.Input(ui.InputProps{ID: "email", Type: "email", Placeholder: "Email"}))),
			ui.ComponentPreview(ui.PreviewProps{Name: "input-file", Source: `<Input id="picture" type="file" />`},
				ui.Field(ui.Label("picture", "Picture"), ui.Input(ui.InputProps{ID: "picture", Type: "file"}))),
		),
	)
}

func labelContent() templ.Component {
	return ui.Fragment(
		ui.ComponentPreview(ui.PreviewProps{Name: "label", Source: `<div className="flex items-center space-x-2">
  <input type="checkbox" id="terms" />
  <Label htmlFor="terms">Accept terms and conditions</Label>
</div>`},
			ui.Field(ui.Input(ui.InputProps{ID: "terms", Type: "checkbox"}), ui.Label("terms", "Accept terms and conditions"))),
		ui.Section("usage", "Usage",
			ui.CodeBlock(`import { Label } from "testingcanxjs"`, "tsx"),
			ui.CodeBlock(`<Label htmlFor="email">Your email address</Label>`, "tsx"),
		),
	)
}
