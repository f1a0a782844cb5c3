package deepattr

import (
	"fmt"
	"reflect"
)

// lookuper is the read hook for attrmap-style containers.
type lookuper interface {
	Lookup(key string) (any, bool)
}

// setter is the write hook for attrmap-style containers.
type setter interface {
	Set(key string, value any) error
}

// Get resolves path against root and returns the value it reaches.
//
// Example:
//
//	v, err := deepattr.Get(cfg, "Servers[1].Addr")
func Get(root any, path string) (any, error) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	v := reflect.ValueOf(root)
	for _, st := range steps {
		if v, err = descend(v, st); err != nil {
			return nil, fmt.Errorf("%w (path %q)", err, path)
		}
	}
	if !v.CanInterface() {
		return nil, fmt.Errorf("%w: unexported target (path %q)", ErrNotFound, path)
	}

	return v.Interface(), nil
}

// GetOr resolves path against root, returning fallback when the path does
// not parse or does not resolve.
func GetOr(root any, path string, fallback any) any {
	v, err := Get(root, path)
	if err != nil {
		return fallback
	}

	return v
}

// Set resolves all but the last step of path against root, then assigns
// value through the final step.
//
// Example:
//
//	err := deepattr.Set(cfg, "Servers[0].Addr", "10.0.0.1:80")
func Set(root any, path string, value any) error {
	steps, err := parsePath(path)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(root)
	for _, st := range steps[:len(steps)-1] {
		if v, err = descend(v, st); err != nil {
			return fmt.Errorf("%w (path %q)", err, path)
		}
	}
	if err = assign(v, steps[len(steps)-1], value); err != nil {
		return fmt.Errorf("%w (path %q)", err, path)
	}

	return nil
}

// unwrap peels interfaces and pointers down to the concrete value.
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

// descend resolves one step against v.
// Container hooks are consulted before reflection so an attrmap keeps its
// own error semantics.
func descend(v reflect.Value, st step) (reflect.Value, error) {
	if st.name != "" && v.IsValid() && v.CanInterface() {
		if bag, ok := v.Interface().(lookuper); ok {
			inner, found := bag.Lookup(st.name)
			if !found {
				return reflect.Value{}, fmt.Errorf("%w: %q", ErrNotFound, st.name)
			}

			// Box through an interface so a nil entry stays a valid Value.
			return reflect.ValueOf(&inner).Elem(), nil
		}
	}

	v = unwrap(v)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: nil before %q", ErrNotFound, st)
	}

	if st.name != "" {
		switch v.Kind() {
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return reflect.Value{}, fmt.Errorf("%w: %q into %s", ErrNotFound, st.name, v.Type())
			}
			elem := v.MapIndex(reflect.ValueOf(st.name).Convert(v.Type().Key()))
			if !elem.IsValid() {
				return reflect.Value{}, fmt.Errorf("%w: %q", ErrNotFound, st.name)
			}

			return elem, nil
		case reflect.Struct:
			f := v.FieldByName(st.name)
			if !f.IsValid() || !f.CanInterface() {
				return reflect.Value{}, fmt.Errorf("%w: %q in %s", ErrNotFound, st.name, v.Type())
			}

			return f, nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: cannot descend into %s via %q", ErrNotFound, v.Type(), st.name)
		}
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if st.index < 0 || st.index >= v.Len() {
			return reflect.Value{}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrNotFound, st.index, v.Len())
		}

		return v.Index(st.index), nil
	case reflect.Map:
		key := reflect.ValueOf(st.index)
		if !key.Type().ConvertibleTo(v.Type().Key()) || v.Type().Key().Kind() == reflect.String {
			return reflect.Value{}, fmt.Errorf("%w: index %d into %s", ErrNotFound, st.index, v.Type())
		}
		elem := v.MapIndex(key.Convert(v.Type().Key()))
		if !elem.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: index %d", ErrNotFound, st.index)
		}

		return elem, nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: cannot index into %s", ErrNotFound, v.Type())
	}
}

// coerce adapts value to type t, or fails with ErrCannotSet.
func coerce(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil into %s", ErrCannotSet, t)
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s into %s", ErrCannotSet, rv.Type(), t)
	}

	return rv, nil
}

// assign writes value into container through the final step.
func assign(container reflect.Value, st step, value any) error {
	if st.name != "" && container.IsValid() && container.CanInterface() {
		if bag, ok := container.Interface().(setter); ok {
			return bag.Set(st.name, value)
		}
	}

	container = unwrap(container)
	if !container.IsValid() {
		return fmt.Errorf("%w: nil before %q", ErrNotFound, st)
	}

	if st.name != "" {
		switch container.Kind() {
		case reflect.Map:
			if container.Type().Key().Kind() != reflect.String {
				return fmt.Errorf("%w: %q into %s", ErrNotFound, st.name, container.Type())
			}
			if container.IsNil() {
				return fmt.Errorf("%w: nil map", ErrCannotSet)
			}
			rv, err := coerce(value, container.Type().Elem())
			if err != nil {
				return err
			}
			container.SetMapIndex(reflect.ValueOf(st.name).Convert(container.Type().Key()), rv)

			return nil
		case reflect.Struct:
			f := container.FieldByName(st.name)
			if !f.IsValid() {
				return fmt.Errorf("%w: %q in %s", ErrNotFound, st.name, container.Type())
			}
			if !f.CanSet() {
				return fmt.Errorf("%w: field %q of %s", ErrCannotSet, st.name, container.Type())
			}
			rv, err := coerce(value, f.Type())
			if err != nil {
				return err
			}
			f.Set(rv)

			return nil
		default:
			return fmt.Errorf("%w: cannot descend into %s via %q", ErrNotFound, container.Type(), st.name)
		}
	}

	switch container.Kind() {
	case reflect.Slice, reflect.Array:
		if st.index < 0 || st.index >= container.Len() {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrNotFound, st.index, container.Len())
		}
		elem := container.Index(st.index)
		if !elem.CanSet() {
			return fmt.Errorf("%w: element %d of %s", ErrCannotSet, st.index, container.Type())
		}
		rv, err := coerce(value, elem.Type())
		if err != nil {
			return err
		}
		elem.Set(rv)

		return nil
	case reflect.Map:
		key := reflect.ValueOf(st.index)
		if !key.Type().ConvertibleTo(container.Type().Key()) || container.Type().Key().Kind() == reflect.String {
			return fmt.Errorf("%w: index %d into %s", ErrNotFound, st.index, container.Type())
		}
		if container.IsNil() {
			return fmt.Errorf("%w: nil map", ErrCannotSet)
		}
		rv, err := coerce(value, container.Type().Elem())
		if err != nil {
			return err
		}
		container.SetMapIndex(key.Convert(container.Type().Key()), rv)

		return nil
	default:
		return fmt.Errorf("%w: cannot index into %s", ErrNotFound, container.Type())
	}
}
