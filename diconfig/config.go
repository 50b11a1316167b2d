// Package diconfig registers application configuration with a [di.Container].
//
// YAML files and dotenv files are loaded into value registrations, one per top-level key:
//
//	regs, err := diconfig.LoadYAML("config.yaml")
//	if err != nil {
//		return err
//	}
//
//	c, err := di.NewContainer(
//		di.WithRegistrations(regs),
//		di.WithRegistration("db", di.AsFunction(OpenDB).Classic().Inject("databaseUrl")),
//	)
//
// [RequireYAML] can be used as the [di.RequireFunc] of a Container to load YAML modules
// with [di.Container.LoadModules].
package diconfig

import (
	"os"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sectrean/di-cradle"
	"github.com/sectrean/di-cradle/internal/errors"
)

// RequireYAML reads the YAML file at path and returns the decoded document.
//
// Mappings are decoded as map[string]any. An empty file returns nil, so the module is skipped.
func RequireYAML(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "diconfig.RequireYAML")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "diconfig.RequireYAML %s", path)
	}

	return doc, nil
}

// LoadYAML reads the YAML mapping in the file at path and returns a value registration
// for each top-level key. Keys are used as names as is.
//
// The options are applied to every registration.
func LoadYAML(path string, opts ...di.RegistrationOption) (map[string]di.Registration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "diconfig.LoadYAML")
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "diconfig.LoadYAML %s", path)
	}

	regs := make(map[string]di.Registration, len(doc))
	for key, val := range doc {
		regs[key] = di.AsValue(val, opts...)
	}

	return regs, nil
}

// LoadEnv reads the dotenv files and returns a string value registration for each variable.
// Names are the variable names in lower camel case: DATABASE_URL is registered as "databaseUrl".
// Later files override earlier ones. With no paths, ".env" is read.
//
// The process environment is not read or modified.
func LoadEnv(paths ...string) (map[string]di.Registration, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	regs := make(map[string]di.Registration)

	// godotenv.Read keeps the first value of a key, read the files one at a time
	for _, path := range paths {
		env, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Wrap(err, "diconfig.LoadEnv")
		}

		for key, val := range env {
			regs[EnvName(key)] = di.AsValue(val)
		}
	}

	return regs, nil
}

// EnvName returns the name an environment variable is registered with by [LoadEnv].
func EnvName(key string) string {
	return strcase.ToLowerCamel(key)
}
