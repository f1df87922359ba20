package product

// Builtin returns a registry populated with the product types the
// processing tools ship with.
func Builtin() *Registry {
	registry := NewRegistry()
	for typeName, factory := range map[string]Factory{
		TypeObservation: NewObservation,
		TypeRadFlat:     NewRadFlat,
		TypeRadDark:     NewRadDark,
	} {
		if err := registry.Register(typeName, factory); err != nil {
			// The table above is the single registration site; a collision
			// here is a programming error.
			panic(err)
		}
	}
	return registry
}
