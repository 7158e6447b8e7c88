package diagnostics

// UnitOption configures a unit built with NewUnit.
type UnitOption func(*unit)

// WithTypes appends endpoint types to the unit.
func WithTypes(types ...Type) UnitOption {
	return func(u *unit) {
		u.types = append(u.types, types...)
	}
}

// WithConfiguration attaches a configuration factory. The factory runs once per
// group construction.
func WithConfiguration(fn func() (Configuration, error)) UnitOption {
	return func(u *unit) {
		u.configure = fn
	}
}

type unit struct {
	name      string
	types     []Type
	configure func() (Configuration, error)
}

type configuredUnit struct {
	*unit
}

// NewUnit creates a unit with the given simple name. The returned value
// implements Configurer only when WithConfiguration was supplied.
func NewUnit(name string, opts ...UnitOption) Unit {
	u := &unit{name: name}
	for _, opt := range opts {
		opt(u)
	}

	if u.configure != nil {
		return &configuredUnit{unit: u}
	}
	return u
}

func (u *unit) Name() string {
	return u.name
}

func (u *unit) Types() []Type {
	return u.types
}

func (u *configuredUnit) Configuration() (Configuration, error) {
	return u.configure()
}
