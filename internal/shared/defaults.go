package shared

// InputDefaults enumerates every optional boolean accepted by the write
// procedures together with the value substituted when the field is absent.
// Services apply these at the validation boundary instead of defaulting
// ad hoc inside handlers.
type InputDefaults struct {
	ProductFeatured     bool
	ProductNew          bool
	TestimonialFeatured bool
	BannerActive        bool
}

// Defaults is the single source of truth for optional-field substitution.
var Defaults = InputDefaults{
	ProductFeatured:     false,
	ProductNew:          false,
	TestimonialFeatured: false,
	BannerActive:        true,
}

// BoolOrDefault resolves an optional boolean input against its default.
func BoolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
