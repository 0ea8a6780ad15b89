package validator

// NotNull requires a field to hold a value.
func NotNull(field string, profiles ...Profile) Rule {
	return newRule(field, KindNotNull, profiles)
}
