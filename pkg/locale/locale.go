// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package locale derives a deterministic locale configuration from the
// environment at startup. Collate, ctype and messages follow the
// environment; monetary, numeric and time are pinned to the fallback
// locale unconditionally because downstream formatting code misbehaves
// in anything else. That asymmetry is policy; do not "fix" it.
package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pgserver/pkg/logging"
	"pgserver/pkg/platform"
)

// Category names one locale category; the value is the category's
// environment variable.
type Category string

const (
	Collate  Category = "LC_COLLATE"
	Ctype    Category = "LC_CTYPE"
	Messages Category = "LC_MESSAGES"
	Monetary Category = "LC_MONETARY"
	Numeric  Category = "LC_NUMERIC"
	Time     Category = "LC_TIME"
)

// Fallback is the locale of last resort; adopting it must always work.
const Fallback = "C"

// environmentDriven categories absorb the caller's environment; the
// remaining categories are pinned to Fallback.
var environmentDriven = []Category{Collate, Ctype, Messages}

var pinned = []Category{Monetary, Numeric, Time}

// Categories returns all six categories in resolution order.
func Categories() []Category {
	return []Category{Collate, Ctype, Messages, Monetary, Numeric, Time}
}

// Binding records the outcome of resolving one category. Resolved is
// never empty: it holds the requested value, a discovered value, or
// Fallback.
type Binding struct {
	Category  Category
	Requested string
	Resolved  string
}

// SetupEnvironment resolves all six categories and installs the results
// in the process environment, then clears any aggregated LC_ALL setting
// so later, more specific variables keep precedence. Because every
// resolved value is written back to its category variable, running the
// setup twice with the same inputs yields the same bindings.
//
// A category that can adopt neither its requested value nor Fallback is
// an unrecoverable startup failure; the returned error names the
// category and value so the caller can report it fatally.
func SetupEnvironment(pf platform.Platform) ([]Binding, error) {
	bindings := make([]Binding, 0, 6)

	for _, category := range environmentDriven {
		b, err := Resolve(category, pf.DefaultLocale(string(category)))
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	for _, category := range pinned {
		b, err := Resolve(category, Fallback)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}

	// LC_ALL has been absorbed into the per-category variables above;
	// left in place it would override anything set later.
	os.Unsetenv("LC_ALL")

	checkCollationTransform()

	return bindings, nil
}

// Resolve makes the permanent setting for one category. If the
// requested value cannot be adopted, Fallback is tried; if that also
// fails the error is fatal to startup.
func Resolve(category Category, requested string) (Binding, error) {
	resolved, err := apply(category, requested)
	if err != nil {
		logging.LocaleLogger.Warn("could not adopt %q for %s, trying %q: %v",
			requested, category, Fallback, err)
		resolved, err = apply(category, Fallback)
		if err != nil {
			return Binding{}, fmt.Errorf("could not adopt %q locale nor %q locale for %s: %w",
				requested, Fallback, category, err)
		}
	}
	return Binding{Category: category, Requested: requested, Resolved: resolved}, nil
}

// apply adopts value for the category and pins it in the environment.
// An empty value means discover from the environment first. Pinning the
// category variable is what makes the setting survive a fork/exec
// re-entry into this bootstrap.
func apply(category Category, value string) (string, error) {
	if value == "" {
		value = discover(category)
	}
	if err := validate(value); err != nil {
		return "", err
	}
	if err := os.Setenv(string(category), value); err != nil {
		return "", err
	}
	logging.LocaleLogger.Trace("%s = %q", category, value)
	return value, nil
}

// discover applies the POSIX precedence LC_ALL > LC_category > LANG,
// defaulting to Fallback when nothing is set.
func discover(category Category) string {
	for _, name := range []string{"LC_ALL", string(category), "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return Fallback
}

// validate rejects locale names this system cannot honor. The portable
// names are always accepted; anything else must carry a well-formed
// language tag before the codeset/modifier suffix.
func validate(name string) error {
	switch name {
	case "C", "POSIX":
		return nil
	}
	tag := name
	if i := strings.IndexByte(tag, '@'); i >= 0 {
		tag = tag[:i]
	}
	if i := strings.IndexByte(tag, '.'); i >= 0 {
		tag = tag[:i]
	}
	switch tag {
	case "C", "POSIX":
		return nil
	}
	if _, err := language.Parse(strings.ReplaceAll(tag, "_", "-")); err != nil {
		return fmt.Errorf("unrecognized locale name %q: %w", name, err)
	}
	return nil
}

// transformWorkaround is set when the collation transform self-test
// fails; collation-sensitive callers consult it to route around the
// platform defect.
var transformWorkaround bool

// checkCollationTransform probes for a broken collation transform and
// arms the workaround flag. Best effort: a failed probe is never fatal.
func checkCollationTransform() {
	c := collate.New(language.Und)
	ordered := c.CompareString("apple", "banana") < 0 &&
		c.CompareString("banana", "apple") > 0 &&
		c.CompareString("apple", "apple") == 0
	if !ordered {
		transformWorkaround = true
		logging.LocaleLogger.Warn("collation transform self-test failed; workaround enabled")
	}
}

// TransformWorkaroundActive reports whether the collation transform
// workaround is in effect for this process.
func TransformWorkaroundActive() bool {
	return transformWorkaround
}
