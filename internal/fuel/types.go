package fuel

// Mass is a quantity of mass units. Module masses arrive as puzzle input;
// fuel itself also has mass (see Fuel.Mass), which is what makes the total
// requirement recursive.
type Mass int64

// Fuel is a quantity of fuel units. It is a distinct type from Mass so the
// two units cannot be mixed up in arithmetic without an explicit conversion.
type Fuel int64

// Report summarizes the fuel requirements of a list of module masses.
// Direct ignores the weight of the fuel itself; Total accounts for it.
type Report struct {
	Masses int
	Direct Fuel
	Total  Fuel
}
