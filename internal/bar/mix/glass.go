package mix

import "fmt"

// Glass is a serving vessel with a fixed capacity.
//
// Capacity is the target volume a drink is poured to, in mL.
type Glass struct {
	Name     string
	Capacity float64
}

// The standard glassware.
var (
	Cocktail     = Glass{Name: "cocktail", Capacity: 70}
	Highball     = Glass{Name: "highball", Capacity: 150}
	OldFashioned = Glass{Name: "old-fashioned", Capacity: 40}
)

// Glasses returns the standard glassware in a stable order.
func Glasses() []Glass {
	return []Glass{Cocktail, Highball, OldFashioned}
}

// GlassByName resolves a glass by name.
func GlassByName(name string) (Glass, error) {
	for _, g := range Glasses() {
		if g.Name == name {
			return g, nil
		}
	}
	return Glass{}, fmt.Errorf("mix: unknown glass %q", name)
}

// RandomGlass picks one of the standard glasses uniformly.
//
// Precondition: src must be non-nil.
func RandomGlass(src Source) Glass {
	all := Glasses()
	return all[src.Intn(len(all))]
}

// ResolveGlass resolves a glass setting: either a known glass name or
// "random" for a uniform pick. A random pick consumes one Intn draw from
// src before any mixing begins.
func ResolveGlass(setting string, src Source) (Glass, error) {
	if setting == "random" {
		return RandomGlass(src), nil
	}
	return GlassByName(setting)
}
