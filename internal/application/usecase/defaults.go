package usecase

// Helpers para aplicar defaults sobre campos opcionales de los requests de alta.

func defaultString(v *string, def string) *string {
	if v == nil {
		return &def
	}
	return v
}

func defaultFloat(v *float64, def float64) *float64 {
	if v == nil {
		return &def
	}
	return v
}

func defaultBool(v *bool, def bool) *bool {
	if v == nil {
		return &def
	}
	return v
}

func defaultInt(v *int, def int) *int {
	if v == nil {
		return &def
	}
	return v
}
