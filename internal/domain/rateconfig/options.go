package rateconfig

// ScopedRates filters tiers to those globally applicable (nil jewel
// type) plus those scoped to the given jewel type.
func ScopedRates(all []InterestRate, jewelTypeID uint64) []InterestRate {
	out := make([]InterestRate, 0, len(all))
	for _, r := range all {
		if r.JewelTypeID == nil || *r.JewelTypeID == jewelTypeID {
			out = append(out, r)
		}
	}
	return out
}

// ScopedValidities is the validity-option counterpart of ScopedRates.
func ScopedValidities(all []ValidityOption, jewelTypeID uint64) []ValidityOption {
	out := make([]ValidityOption, 0, len(all))
	for _, v := range all {
		if v.JewelTypeID == nil || *v.JewelTypeID == jewelTypeID {
			out = append(out, v)
		}
	}
	return out
}

// PickRate keeps the current selection when it is still in scope and
// falls back to the first valid tier after a jewel-type change. Nil when
// nothing is selectable.
func PickRate(scoped []InterestRate, selectedID uint64) *InterestRate {
	for i := range scoped {
		if scoped[i].ID == selectedID {
			return &scoped[i]
		}
	}
	if len(scoped) > 0 {
		return &scoped[0]
	}
	return nil
}

// PickValidity is the validity-option counterpart of PickRate.
func PickValidity(scoped []ValidityOption, selectedID uint64) *ValidityOption {
	for i := range scoped {
		if scoped[i].ID == selectedID {
			return &scoped[i]
		}
	}
	if len(scoped) > 0 {
		return &scoped[0]
	}
	return nil
}
