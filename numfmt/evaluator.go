package numfmt

// selectSection returns the section that governs v, or nil when none does.
func selectSection(sections []*Section, v Value) *Section {
	switch v.kind {
	case KindText:
		if len(sections) == 4 {
			return sections[3]
		}
		return nil

	case KindDateTime:
		// Conditions are not evaluated for dates; the first date section wins.
		for _, s := range sections {
			if s.Type == SectionDate {
				return s
			}
		}
		return nil

	case KindNumber, KindDuration:
		f, _ := v.Float()
		return numericSection(sections, f)
	}
	return nil
}

// numericSection applies Excel's sign and condition dispatch.  The boundary
// at zero differs by section count: with two sections zero is positive, with
// three or more it goes to the dedicated zero section.
func numericSection(sections []*Section, f float64) *Section {
	n := len(sections)
	if n == 0 {
		return nil
	}

	first := sections[0]
	if first.Condition != nil {
		if first.Condition.Evaluate(f) {
			return first
		}
	} else if n == 1 || (n == 2 && f >= 0) || (n >= 2 && f > 0) {
		return first
	}

	if n < 2 {
		return nil
	}

	second := sections[1]
	if second.Condition != nil {
		if second.Condition.Evaluate(f) {
			return second
		}
	} else if f < 0 || (n == 2 && first.Condition != nil) {
		return second
	}

	if n < 3 {
		return nil
	}
	return sections[2]
}
