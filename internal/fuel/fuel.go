package fuel

// Fuel returns the fuel required to launch this mass: mass/3 - 2, with
// truncating integer division. The boolean is false when the formula would
// go negative, meaning no fuel is required; a negative Fuel value is never
// returned.
func (m Mass) Fuel() (Fuel, bool) {
	f := Fuel(m/3 - 2)
	if f < 0 {
		return 0, false
	}
	return f, true
}

// Mass returns how much this amount of fuel weighs. One fuel unit weighs
// one mass unit.
func (f Fuel) Mass() Mass {
	return Mass(f)
}

// TotalFuel returns the fuel required to launch this mass, including the
// fuel needed to lift that fuel, and so on until the marginal requirement
// reaches zero. Each step divides the remaining mass by three, so the
// recursion depth is logarithmic in the input.
func (m Mass) TotalFuel() Fuel {
	f, ok := m.Fuel()
	if !ok {
		return 0
	}
	return f + f.Mass().TotalFuel()
}

// SumDirect totals the direct fuel requirement of each mass. Masses too
// small to need fuel contribute zero.
func SumDirect(masses []Mass) Fuel {
	var sum Fuel
	for _, m := range masses {
		if f, ok := m.Fuel(); ok {
			sum += f
		}
	}
	return sum
}

// SumTotal totals the recursive fuel requirement of each mass.
func SumTotal(masses []Mass) Fuel {
	var sum Fuel
	for _, m := range masses {
		sum += m.TotalFuel()
	}
	return sum
}

// Summarize computes both totals in a single pass over the input.
func Summarize(masses []Mass) Report {
	report := Report{Masses: len(masses)}
	for _, m := range masses {
		if f, ok := m.Fuel(); ok {
			report.Direct += f
		}
		report.Total += m.TotalFuel()
	}
	return report
}
