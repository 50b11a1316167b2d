package di

// A Module is a collection of container options.
// It can be used to export a re-usable group of related registrations.
//
// Example:
//
//	var StoreModule = di.Module{
//		di.WithRegistration("db", di.AsFunction(OpenDB).Singleton()),
//		di.WithRegistration("store", di.AsFunction(NewStore).Classic().Inject("db")),
//	}
type Module []ContainerOption

func (Module) applyContainer(*Container) error { return nil }
func (Module) order() optionOrder              { return orderSettings }

// WithModule applies the options in a [Module] when calling [NewContainer] or [Container.NewScope].
//
// Example:
//
//	c, err := di.NewContainer(
//		di.WithModule(StoreModule), // var StoreModule di.Module
//		di.WithRegistration("handler", di.AsClassOf[Handler]()),
//	)
func WithModule(m Module) ContainerOption {
	return m
}

// flattenModules replaces modules, including nested modules, with their options.
func flattenModules(opts []ContainerOption) []ContainerOption {
	flat := make([]ContainerOption, 0, len(opts))

	for _, opt := range opts {
		switch o := opt.(type) {
		case nil:
			continue
		case Module:
			flat = append(flat, flattenModules(o)...)
		default:
			flat = append(flat, o)
		}
	}

	return flat
}
