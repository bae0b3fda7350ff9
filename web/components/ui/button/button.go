package button

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantPrimary     Variant = "primary"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
)

const base = "inline-flex items-center justify-center rounded-md px-3 py-1.5 text-sm font-medium no-underline transition-colors"

var variants = map[Variant]string{
	VariantPrimary:     "bg-blue-600 text-white hover:bg-blue-700",
	VariantSecondary:   "bg-black text-white hover:bg-neutral-800",
	VariantDestructive: "bg-red-600 text-white hover:bg-red-700",
	VariantOutline:     "border border-neutral-300 bg-white text-neutral-900 hover:bg-neutral-100",
}

type Props struct {
	Href       string
	Variant    Variant
	Class      string
	Attributes templ.Attributes
	// Submit renders a <button type="submit"> instead of a link.
	Submit bool
	Name   string
	Value  string
}

// Classes merges the base, variant and caller classes so later utilities win.
func Classes(v Variant, class string) string {
	if v == "" {
		v = VariantPrimary
	}
	return twmerge.Merge(base, variants[v], class)
}
