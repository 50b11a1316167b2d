package di

import (
	"reflect"

	"github.com/iancoleman/strcase"

	"github.com/sectrean/di-cradle/internal/errors"
)

// injectTag is the struct tag naming the dependency of a field in Classic mode.
const injectTag = "di"

type classField struct {
	index int
	name  string
	t     reflect.Type
}

// classBuilder allocates and initializes a struct registered with AsClass.
type classBuilder struct {
	t      reflect.Type
	fields []classField
	deps   []string
	init   bool
}

func newClassBuilder(r Registration, mode ResolutionMode) (*classBuilder, error) {
	t := r.class
	if t == nil {
		return nil, errors.New("class type is nil")
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Errorf("class %s must be a struct type", t)
	}
	if len(r.inject) > 0 {
		return nil, errors.Errorf("inject %q: classes declare dependencies with `di` struct tags", r.inject)
	}

	b := &classBuilder{
		t:    t,
		init: reflect.PointerTo(t).Implements(typeInitializer),
	}

	if mode != Classic {
		return b, nil
	}

	for i := range t.NumField() {
		f := t.Field(i)

		tag, ok := f.Tag.Lookup(injectTag)
		if !ok || tag == "-" {
			continue
		}
		if !f.IsExported() {
			return nil, errors.Errorf("class %s: field %s is not exported", t, f.Name)
		}

		name := tag
		if name == "" {
			name = strcase.ToLowerCamel(f.Name)
		}

		b.fields = append(b.fields, classField{index: i, name: name, t: f.Type})
		b.deps = append(b.deps, name)
	}

	return b, nil
}

func (b *classBuilder) Dependencies() []string {
	return b.deps
}

func (b *classBuilder) build(rc *resolveContext, scope *Container) (any, error) {
	ptr := reflect.New(b.t)
	elem := ptr.Elem()

	for _, f := range b.fields {
		// Recursive call
		val, err := rc.resolve(scope, f.name)
		if err != nil {
			return nil, err
		}

		v, err := assignableValue(f.t, val)
		if err != nil {
			return nil, errors.Wrapf(err, "inject %q into %s.%s", f.name, b.t, b.t.Field(f.index).Name)
		}
		elem.Field(f.index).Set(v)
	}

	if b.init {
		cradle := newResolveCradle(rc, scope)
		defer cradle.release()

		err := ptr.Interface().(Initializer).Init(cradle)
		if err != nil {
			return nil, err
		}
	}

	return ptr.Interface(), nil
}
