// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package message fills placeholder tokens of the form {{name}} in message
// templates.
//
// Substitution is a single pass over the template: a bound value is inserted
// verbatim and is never scanned for further tokens, and delimiter characters
// inside values are not escaped. A value such as "{{x}}" therefore appears in
// the output literally.
package message

import (
	"regexp"
)

// placeholderPattern matches {{name}} where name is letters, digits or "_".
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Render replaces every occurrence of each {{name}} token in template with
// bindings[name]. Tokens without a binding are replaced with "".
//
// Example usage:
//
//	message.Render("Hi {{nombre}}", map[string]string{"nombre": "Ana"}) // "Hi Ana"
func Render(template string, bindings map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		return bindings[name]
	})
}

// Placeholders lists the distinct token names of template in order of first
// appearance.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}

	return names
}
