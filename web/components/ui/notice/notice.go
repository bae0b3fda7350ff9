package notice

import twmerge "github.com/Oudwins/tailwind-merge-go"

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

type Props struct {
	Message string
	Variant Variant
	Class   string
}

// Classes returns the box classes for v, merged with class.
func Classes(v Variant, class string) string {
	return twmerge.Merge("notice my-4 rounded-md border px-4 py-3", variantClass(v), class)
}

func variantClass(v Variant) string {
	switch v {
	case VariantError:
		return "border-red-300 bg-red-50 text-red-800"
	case VariantWarning:
		return "border-amber-300 bg-amber-50 text-amber-800"
	case VariantInfo:
		return "border-blue-300 bg-blue-50 text-blue-800"
	default:
		return "border-green-300 bg-green-50 text-green-800"
	}
}
