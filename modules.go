package di

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/iancoleman/strcase"

	"github.com/sectrean/di-cradle/internal/errors"
)

// RequireFunc loads the module at path and returns what it exports.
//
// The result is registered by [Container.LoadModules]:
//   - a [Registration] is registered as is,
//   - a function is registered with [AsFunction],
//   - nil is skipped,
//   - any other value is registered with [AsValue].
//
// Set the require function with [WithRequire].
type RequireFunc func(path string) (any, error)

// WithRequire sets the function used by [Container.LoadModules] to load modules.
// Scopes inherit the require function of their parent.
func WithRequire(require RequireFunc) ContainerOption {
	return newContainerOption(orderSettings, func(c *Container) error {
		if require == nil {
			return errors.New("with require: require is nil")
		}

		c.require = require
		return nil
	})
}

// ModuleDescriptor describes a module file found by [ListModules].
type ModuleDescriptor struct {
	// Name is the file name without its extension.
	Name string
	// Path is the absolute path of the file.
	Path string
	// Options are the registration options of the pattern that matched the file.
	Options []RegistrationOption
}

// ModulePattern is a glob pattern with registration options for the matching modules.
//
// Patterns support `**` to match any number of directories.
type ModulePattern struct {
	Pattern string
	Options []RegistrationOption
}

// Glob creates a [ModulePattern].
//
//	di.Glob("services/*.yaml", di.Singleton)
func Glob(pattern string, opts ...RegistrationOption) ModulePattern {
	return ModulePattern{
		Pattern: pattern,
		Options: opts,
	}
}

// Globs creates a [ModulePattern] without options for each pattern.
func Globs(patterns ...string) []ModulePattern {
	mps := make([]ModulePattern, len(patterns))
	for i, p := range patterns {
		mps[i] = Glob(p)
	}
	return mps
}

// NameFormatter returns the name a module is registered with.
// name is the same as d.Name.
type NameFormatter func(name string, d ModuleDescriptor) string

// CamelCase formats module names in lower camel case: "user-service" becomes "userService".
func CamelCase(name string, _ ModuleDescriptor) string {
	return strcase.ToLowerCamel(name)
}

// ListModulesOption configures [ListModules].
type ListModulesOption interface {
	applyListModules(*listModulesConfig)
}

// LoadModulesOption configures [Container.LoadModules].
type LoadModulesOption interface {
	applyLoadModules(*loadModulesConfig)
}

type listModulesConfig struct {
	cwd string
}

type loadModulesConfig struct {
	listModulesConfig
	formatName NameFormatter
	regOpts    []RegistrationOption
}

// ModulesOption can be used with both [ListModules] and [Container.LoadModules].
type ModulesOption interface {
	ListModulesOption
	LoadModulesOption
}

type cwdOption string

func (o cwdOption) applyListModules(cfg *listModulesConfig) {
	cfg.cwd = string(o)
}

func (o cwdOption) applyLoadModules(cfg *loadModulesConfig) {
	cfg.cwd = string(o)
}

// WithCwd sets the directory relative patterns are matched from.
// The default is the current working directory.
func WithCwd(dir string) ModulesOption {
	return cwdOption(dir)
}

type loadModulesOption func(*loadModulesConfig)

func (o loadModulesOption) applyLoadModules(cfg *loadModulesConfig) {
	o(cfg)
}

// WithFormatName sets the function used to compute the registered name of each module.
// The default is the module name as is.
//
//	c.LoadModules(di.Globs("services/*.yaml"), di.WithFormatName(di.CamelCase))
func WithFormatName(f NameFormatter) LoadModulesOption {
	return loadModulesOption(func(cfg *loadModulesConfig) {
		cfg.formatName = f
	})
}

// WithRegistrationOptions sets registration options for every loaded module.
// Options of the [ModulePattern] are applied after these.
func WithRegistrationOptions(opts ...RegistrationOption) LoadModulesOption {
	return loadModulesOption(func(cfg *loadModulesConfig) {
		cfg.regOpts = append(cfg.regOpts, opts...)
	})
}

// ListModules returns the files matching the patterns.
//
// Files are sorted by path for each pattern. A file matched by more than one pattern is
// listed once, with the options of the first pattern. Directories are not listed.
func ListModules(patterns []ModulePattern, opts ...ListModulesOption) ([]ModuleDescriptor, error) {
	var cfg listModulesConfig
	for _, opt := range opts {
		opt.applyListModules(&cfg)
	}

	mods, err := listModules(patterns, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "di.ListModules")
	}

	return mods, nil
}

func listModules(patterns []ModulePattern, cfg listModulesConfig) ([]ModuleDescriptor, error) {
	cwd := cfg.cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cwd = wd
	}

	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, err
	}

	var mods []ModuleDescriptor
	seen := make(map[string]struct{})

	for _, mp := range patterns {
		paths, err := globFiles(cwd, mp.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "pattern %q", mp.Pattern)
		}

		for _, path := range paths {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			mods = append(mods, ModuleDescriptor{
				Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
				Path:    path,
				Options: mp.Options,
			})
		}
	}

	return mods, nil
}

// globFiles returns the sorted absolute paths of the files matching pattern.
func globFiles(cwd, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(cwd, pattern)
	}

	base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(rel) {
		return nil, doublestar.ErrBadPattern
	}

	base = filepath.FromSlash(base)
	fsys := os.DirFS(base)

	matches, err := doublestar.Glob(fsys, rel)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || info.IsDir() {
			continue
		}

		paths = append(paths, filepath.Join(base, filepath.FromSlash(m)))
	}

	slices.Sort(paths)
	return paths, nil
}

// LoadModules finds the modules matching the patterns, loads each one with the
// [RequireFunc] of the [Container] and registers the result.
//
// Modules that fail to load or register are reported in the joined error. The other
// modules stay registered. The descriptors of the registered modules are returned.
//
// Example:
//
//	c, err := di.NewContainer(di.WithRequire(diconfig.RequireYAML))
//	...
//	mods, err := c.LoadModules(
//		[]di.ModulePattern{di.Glob("config/**/*.yaml", di.Singleton)},
//		di.WithCwd(root),
//		di.WithFormatName(di.CamelCase),
//	)
func (c *Container) LoadModules(patterns []ModulePattern, opts ...LoadModulesOption) ([]ModuleDescriptor, error) {
	var cfg loadModulesConfig
	for _, opt := range opts {
		opt.applyLoadModules(&cfg)
	}

	if c.require == nil {
		return nil, errors.New("di.Container.LoadModules: require function not set")
	}

	mods, err := listModules(patterns, cfg.listModulesConfig)
	if err != nil {
		return nil, errors.Wrap(err, "di.Container.LoadModules")
	}

	var loaded []ModuleDescriptor
	var errs errors.MultiError

	for _, d := range mods {
		name := d.Name
		if cfg.formatName != nil {
			name = cfg.formatName(name, d)
		}

		ok, err := c.loadModule(name, d, cfg.regOpts)
		if err != nil {
			errs = errs.Appendf(err, "module %s", d.Path)
			continue
		}
		if ok {
			loaded = append(loaded, d)
		}
	}

	return loaded, errs.Wrap("di.Container.LoadModules")
}

func (c *Container) loadModule(name string, d ModuleDescriptor, regOpts []RegistrationOption) (bool, error) {
	val, err := c.require(d.Path)
	if err != nil {
		return false, err
	}

	opts := slices.Concat(regOpts, d.Options)

	var r Registration
	switch v := val.(type) {
	case nil:
		c.logger.Debug("module skipped",
			"container", c.id,
			"path", d.Path,
		)
		return false, nil
	case Registration:
		r = v.With(opts...)
	default:
		if reflect.TypeOf(v).Kind() == reflect.Func {
			r = AsFunction(v, opts...)
		} else {
			r = AsValue(v, opts...)
		}
	}

	err = c.register(name, r)
	if err != nil {
		return false, err
	}

	c.logger.Debug("module loaded",
		"container", c.id,
		"name", name,
		"path", d.Path,
	)

	return true, nil
}
